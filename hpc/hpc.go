//Package hpc assembles the launch commands for electronic-structure runs
//on the supported computing facilities. Everything is carried in an
//explicit Config: nothing here reads or mutates the process environment,
//so two jobs with different settings can be prepared side by side.
package hpc

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//Config selects the facility, basis set and species defaults for an
//FHI-aims run. The zero value is not usable; start from DefaultConfig or
//Load.
type Config struct {
	Facility string `mapstructure:"facility"`
	BasisSet string `mapstructure:"basis_set"`
	Defaults int    `mapstructure:"defaults"` //species-defaults vintage, 2010 or 2020
	Version  string `mapstructure:"version"`  //aims binary version tag, e.g. "240507"
}

//DefaultConfig returns the settings most runs start from: light basis,
//2010 species defaults.
func DefaultConfig(facility string) *Config {
	return &Config{
		Facility: facility,
		BasisSet: "light",
		Defaults: 2010,
		Version:  "$VERSION",
	}
}

//Load reads a Config from a YAML/TOML/JSON file, filling unset fields
//with the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("basis_set", "light")
	v.SetDefault("defaults", 2010)
	v.SetDefault("version", "$VERSION")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("hpc: reading %s: %w", path, err)
	}
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("hpc: parsing %s: %w", path, err)
	}
	if c.Facility == "" {
		return nil, fmt.Errorf("hpc: %s does not set a facility", path)
	}
	return c, nil
}

//per-facility launcher preambles and installation roots.
type facility struct {
	preamble string
	root     string
}

var facilities = map[string]facility{
	"hawk":     {"time mpirun -np $SLURM_NTASKS ", "/apps/local/projects/scw1057/software/fhi-aims/"},
	"isambard": {"time aprun -n $NPROCS ", "/home/ca-alogsdail/fhi-aims-gnu/"},
	"archer2":  {"srun --cpu-bind=cores --distribution=block:block --hint=nomultithread ", "/work/e05/e05-files-log/shared/software/fhi-aims/"},
	"young":    {"gerun ", "/home/mmm0170/Software/fhi-aims/"},
}

//AimsCommand returns the full launch command for FHI-aims on the
//configured facility. Unknown facilities are an error; there is no
//default machine to fall back to.
func (c *Config) AimsCommand() (string, error) {
	fac, ok := facilities[strings.ToLower(c.Facility)]
	if !ok {
		return "", fmt.Errorf("hpc: facility %q is not recognised", c.Facility)
	}
	return fac.preamble + fac.root + "bin/aims." + c.Version + ".scalapack.mpi.x", nil
}

//SpeciesDir returns the directory with the species defaults for the
//configured facility, basis set and defaults vintage.
func (c *Config) SpeciesDir() (string, error) {
	fac, ok := facilities[strings.ToLower(c.Facility)]
	if !ok {
		return "", fmt.Errorf("hpc: facility %q is not recognised", c.Facility)
	}
	if c.Defaults != 2010 && c.Defaults != 2020 {
		return "", fmt.Errorf("hpc: species defaults %d not available, want 2010 or 2020", c.Defaults)
	}
	//ARCHER2 ships the newer species-defaults layout with the vintage
	//as an extra directory level.
	if strings.ToLower(c.Facility) == "archer2" {
		return fmt.Sprintf("%sspecies_defaults/defaults_%d/%s", fac.root, c.Defaults, c.BasisSet), nil
	}
	return fac.root + "species_defaults/" + c.BasisSet, nil
}
