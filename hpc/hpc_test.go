package hpc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAimsCommand(Te *testing.T) {
	c := DefaultConfig("hawk")
	cmd, err := c.AimsCommand()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(cmd, "time mpirun") {
		Te.Errorf("hawk command %q, want an mpirun launch", cmd)
	}
	if !strings.Contains(cmd, "bin/aims.$VERSION.scalapack.mpi.x") {
		Te.Errorf("hawk command %q misses the binary path", cmd)
	}
	//facility names are case-insensitive
	c.Facility = "Hawk"
	if _, err = c.AimsCommand(); err != nil {
		Te.Errorf("capitalized facility rejected: %v", err)
	}
	c.Facility = "unknowable"
	if _, err = c.AimsCommand(); err == nil {
		Te.Error("unknown facility accepted")
	}
}

func TestSpeciesDir(Te *testing.T) {
	c := DefaultConfig("archer2")
	c.Defaults = 2020
	dir, err := c.SpeciesDir()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(dir, "defaults_2020") || !strings.HasSuffix(dir, "light") {
		Te.Errorf("archer2 species dir %q", dir)
	}
	//the other facilities have no vintage level
	c = DefaultConfig("young")
	c.BasisSet = "tight"
	dir, err = c.SpeciesDir()
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(dir, "defaults_") || !strings.HasSuffix(dir, "tight") {
		Te.Errorf("young species dir %q", dir)
	}
	c.Defaults = 1999
	if _, err = c.SpeciesDir(); err == nil {
		Te.Error("unavailable species-defaults vintage accepted")
	}
}

func TestLoad(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "run.yaml")
	data := "facility: isambard\nbasis_set: tight\nversion: \"240507\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		Te.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Facility != "isambard" || c.BasisSet != "tight" || c.Version != "240507" {
		Te.Errorf("loaded config %+v", c)
	}
	if c.Defaults != 2010 {
		Te.Errorf("defaults not filled in: %+v", c)
	}
	cmd, err := c.AimsCommand()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(cmd, "aims.240507.") {
		Te.Errorf("loaded version not in the command: %q", cmd)
	}
	//a config without a facility is useless and must be rejected
	bare := filepath.Join(Te.TempDir(), "bare.yaml")
	if err := os.WriteFile(bare, []byte("basis_set: light\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Load(bare); err == nil {
		Te.Error("facility-less config accepted")
	}
	if _, err := Load(filepath.Join(Te.TempDir(), "missing.yaml")); err == nil {
		Te.Error("missing config file accepted")
	}
}
