package squarefibstark

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestConfigValidateRejectsMismatchedDomains(t *testing.T) {
	c := DefaultConfig()
	c.FRIDomainSize = 123
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for an invalid FRI domain size")
	}
}

func TestConfigValidateRejectsNonPowerOfTwoTraceDomain(t *testing.T) {
	c := DefaultConfig()
	c.TraceDomainSize = 1000
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for a non-power-of-two trace domain size")
	}
}

func TestConfigClone(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.FRIQueries = 99
	if c.FRIQueries == 99 {
		t.Fatalf("mutating the clone should not affect the original")
	}
}
