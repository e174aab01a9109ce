package config

import "testing"

func TestLoadFromBytesFillsDefaults(t *testing.T) {
	s, err := LoadFromBytes([]byte(`seed: 7`))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if s.AverageListLengthValue != 50.0 {
		t.Errorf("AverageListLengthValue = %v, want 50.0", s.AverageListLengthValue)
	}
	if s.MaxExamples != 100 {
		t.Errorf("MaxExamples = %v, want 100", s.MaxExamples)
	}
	if s.Seed != 7 {
		t.Errorf("Seed = %v, want 7", s.Seed)
	}
}

func TestLoadFromBytesGeneratesSeedWhenZero(t *testing.T) {
	s, err := LoadFromBytes([]byte(`average_list_length: 10`))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if s.Seed == 0 {
		t.Error("expected a non-zero auto-generated seed")
	}
}

func TestValidateRejectsNonPositiveAverageListLength(t *testing.T) {
	s := Default()
	s.AverageListLengthValue = 0
	if err := s.Validate(); err == nil {
		t.Error("expected an error for average_list_length = 0")
	}
}

func TestValidateRejectsZeroMaxExamples(t *testing.T) {
	s := Default()
	s.MaxExamples = 0
	if err := s.Validate(); err == nil {
		t.Error("expected an error for max_examples = 0")
	}
}

func TestHashIsSensitiveToContent(t *testing.T) {
	a := Default()
	b := Default()
	b.AverageListLengthValue = 25.0
	ha, hb := a.Hash(), b.Hash()
	if string(ha) == string(hb) {
		t.Error("expected different settings to hash differently")
	}
}

func TestAverageListLengthImplementsStrategySettings(t *testing.T) {
	s := Default()
	if s.AverageListLength() != s.AverageListLengthValue {
		t.Errorf("AverageListLength() = %v, want %v", s.AverageListLength(), s.AverageListLengthValue)
	}
}
