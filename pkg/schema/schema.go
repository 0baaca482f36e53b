package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema names the columns the pipeline operates on. The survey layout is
// fixed in practice, but every component receives the schema explicitly so
// synthetic layouts can be used in tests.
type Schema struct {
	// InputFeatures are the energy-use columns fed to the models.
	InputFeatures []string `yaml:"input_features"`
	// TargetVariables are the emissions columns, one model per target.
	TargetVariables []string `yaml:"target_variables"`
	// TotalElectricity and OnsiteRenewable are used only to derive the
	// renewable category; they are not model inputs.
	TotalElectricity string `yaml:"total_electricity"`
	OnsiteRenewable  string `yaml:"onsite_renewable"`
	// MissingSentinel is the literal string the survey uses for absent values.
	MissingSentinel string `yaml:"missing_sentinel"`
}

// Default returns the schema of the benchmarking survey export.
func Default() *Schema {
	return &Schema{
		InputFeatures: []string{
			"Site EUI (kBtu/ft2)",
			"Weather Normalized Site EUI (kBtu/ft2)",
			"Weather Normalized Site Electricity Intensity (kWh/ft2)",
			"Weather Normalized Site Natural Gas Intensity (therms/ft2)",
			"Weather Normalized Source EUI (kBtu/ft2)",
			"Fuel Oil #1 Use (kBtu)",
			"Fuel Oil #2 Use (kBtu)",
			"Fuel Oil #4 Use (kBtu)",
			"Fuel Oil #5 & 6 Use (kBtu)",
			"Diesel #2 Use (kBtu)",
			"District Steam Use (kBtu)",
			"Natural Gas Use (kBtu)",
			"Weather Normalized Site Natural Gas Use (therms)",
			"Electricity Use - Grid Purchase (kBtu)",
			"Weather Normalized Site Electricity (kWh)",
			"Source EUI (kBtu/ft2)",
			"Water Use (All Water Sources) (kgal)",
			"Water Intensity (All Water Sources) (gal/ft2)",
			"Source Energy Use (kBtu)",
		},
		TargetVariables: []string{
			"Total GHG Emissions (Metric Tons CO2e)",
			"Direct GHG Emissions (Metric Tons CO2e)",
			"Indirect GHG Emissions (Metric Tons CO2e)",
		},
		TotalElectricity: "Electricity Use - Grid Purchase and Generated from Onsite Renewable Systems (kWh)",
		OnsiteRenewable:  "Electricity Use - Generated from Onsite Renewable Systems (kWh)",
		MissingSentinel:  "Not Available",
	}
}

// Load reads a schema from a YAML file. Fields left empty in the file fall
// back to the defaults.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return s, nil
}

func (s *Schema) applyDefaults() {
	def := Default()
	if len(s.InputFeatures) == 0 {
		s.InputFeatures = def.InputFeatures
	}
	if len(s.TargetVariables) == 0 {
		s.TargetVariables = def.TargetVariables
	}
	if s.TotalElectricity == "" {
		s.TotalElectricity = def.TotalElectricity
	}
	if s.OnsiteRenewable == "" {
		s.OnsiteRenewable = def.OnsiteRenewable
	}
	if s.MissingSentinel == "" {
		s.MissingSentinel = def.MissingSentinel
	}
}

// Validate checks the schema for obvious misconfiguration.
func (s *Schema) Validate() error {
	if len(s.InputFeatures) == 0 {
		return fmt.Errorf("no input features configured")
	}
	if len(s.TargetVariables) == 0 {
		return fmt.Errorf("no target variables configured")
	}
	seen := make(map[string]struct{}, len(s.InputFeatures))
	for _, f := range s.InputFeatures {
		if _, ok := seen[f]; ok {
			return fmt.Errorf("duplicate input feature %q", f)
		}
		seen[f] = struct{}{}
	}
	for _, t := range s.TargetVariables {
		if _, ok := seen[t]; ok {
			return fmt.Errorf("column %q listed as both input and target", t)
		}
	}
	return nil
}
