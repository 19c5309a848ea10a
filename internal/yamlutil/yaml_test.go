package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2typst/internal/yamlutil"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	data := []byte("name: test\ncount: 3\n")
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Name != "test" || cfg.Count != 3 {
		t.Errorf("Unmarshal() = %+v, want {Name:test Count:3}", cfg)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalInvalidYAML(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yamlutil.Unmarshal([]byte("name: [unclosed"), &cfg); err == nil {
		t.Error("Unmarshal() error = nil, want parse error")
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	known := []byte("name: x\ncount: 1\n")
	if err := yamlutil.UnmarshalStrict(known, &cfg); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}

	unknown := []byte("name: x\nbogus: 1\n")
	if err := yamlutil.UnmarshalStrict(unknown, &cfg); err == nil {
		t.Error("UnmarshalStrict() error = nil, want unknown-field error")
	}
}
