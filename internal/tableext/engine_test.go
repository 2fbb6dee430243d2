// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableext

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/tripconv/pkg/types"
)

// fakeEngine returns canned tables or an error.
type fakeEngine struct {
	tables []types.Table
	err    error
}

func (f *fakeEngine) ExtractTables(pdfPath string, opts Options) ([]types.Table, error) {
	return f.tables, f.err
}

func TestFirst(t *testing.T) {
	one := types.Table{Header: []string{"a"}, Rows: [][]string{{"1"}}}
	two := types.Table{Header: []string{"b"}}

	tests := []struct {
		name    string
		engine  *fakeEngine
		want    types.Table
		wantErr string
	}{
		{
			name:   "single table",
			engine: &fakeEngine{tables: []types.Table{one}},
			want:   one,
		},
		{
			name:   "multiple tables uses first",
			engine: &fakeEngine{tables: []types.Table{one, two}},
			want:   one,
		},
		{
			name:    "no table found",
			engine:  &fakeEngine{},
			wantErr: "no table found",
		},
		{
			name:    "engine failure propagates",
			engine:  &fakeEngine{err: errors.New("broken xref")},
			wantErr: "broken xref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := First(tt.engine, "trip.pdf", Options{})
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Header[0] != tt.want.Header[0] {
				t.Errorf("table = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewEngineDefaultsToGeometry(t *testing.T) {
	e, err := NewEngine(types.ExtractionConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := e.(*GeometryEngine); !ok {
		t.Errorf("engine = %T, want *GeometryEngine", e)
	}
}

func TestNewEngineUnknownBackend(t *testing.T) {
	_, err := NewEngine(types.ExtractionConfig{Backend: "ocr"})
	if err == nil || !strings.Contains(err.Error(), "unknown extraction backend") {
		t.Fatalf("err = %v, want unknown backend error", err)
	}
}
