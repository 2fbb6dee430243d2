// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tripconv/internal/report"
	"github.com/pdiddy/tripconv/pkg/types"
)

// newExtractionCmd registers the backend flags the way rootCmd does, on a
// throwaway command so tests do not share rootCmd's flag state.
func newExtractionCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "extract"}
	cmd.Flags().String("backend", string(types.BackendGeometry), "")
	cmd.Flags().String("tabula-image", "", "")
	return cmd
}

func TestExtractionConfigDefaults(t *testing.T) {
	cfg := extractionConfig(newExtractionCmd())
	assert.Equal(t, types.BackendGeometry, cfg.Backend)
	assert.Empty(t, cfg.TabulaImage)
}

func TestExtractionConfigFromFlags(t *testing.T) {
	cmd := newExtractionCmd()
	require.NoError(t, cmd.Flags().Set("backend", "tabula"))
	require.NoError(t, cmd.Flags().Set("tabula-image", "tabula:2.0"))

	cfg := extractionConfig(cmd)
	assert.Equal(t, types.BackendTabula, cfg.Backend)
	assert.Equal(t, "tabula:2.0", cfg.TabulaImage)
}

func TestRootBackendFlagDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("backend")
	require.NotNil(t, flag)
	assert.Equal(t, string(types.BackendGeometry), flag.DefValue)
}

func TestReportOutputDefault(t *testing.T) {
	flag := reportCmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, report.DefaultFileName, flag.DefValue)
	assert.Equal(t, "市内交通费报销明细表.docx", flag.DefValue)
}
