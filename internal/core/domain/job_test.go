package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/core/domain"
)

func TestOutputKindOf(t *testing.T) {
	tests := []struct {
		id   string
		want domain.OutputKind
	}{
		{"Main.wsf", domain.OutputWsf},
		{"dist/MAIN.WSF", domain.OutputWsf},
		{"lib.js", domain.OutputJScript},
		{"Lib.JS", domain.OutputJScript},
		{"helper.vbs", domain.OutputVBScript},
		{"readme.txt", domain.OutputUnsupported},
		{"run", domain.OutputUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.OutputKindOf(tt.id))
		})
	}
}

func TestOutputKind_Language(t *testing.T) {
	assert.Equal(t, domain.JScript, domain.OutputJScript.Language())
	assert.Equal(t, domain.VBScript, domain.OutputVBScript.Language())
	assert.Equal(t, domain.LanguageUnknown, domain.OutputWsf.Language())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		attr    string
		want    domain.Language
		wantErr bool
	}{
		{"", domain.JScript, false},
		{"JScript", domain.JScript, false},
		{"javascript", domain.JScript, false},
		{"JScript.Encode", domain.JScript, false},
		{"VBScript", domain.VBScript, false},
		{" vbscript ", domain.VBScript, false},
		{"PerlScript", domain.LanguageUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			got, err := domain.ParseLanguage(tt.attr)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJob_Sources(t *testing.T) {
	job := domain.Job{
		ID: "main.wsf",
		Scripts: []domain.ScriptRef{
			{Language: domain.JScript, Src: "a.js"},
			{Language: domain.JScript, Inline: "WScript.Echo(1);"},
			{Language: domain.VBScript, Src: "b.vbs"},
		},
	}

	assert.Equal(t, []string{"a.js", "b.vbs"}, job.Sources())
	assert.Equal(t, domain.OutputWsf, job.Kind())
}

func TestPackage_Job(t *testing.T) {
	pkg := domain.Package{
		Path: filepath.Join("proj", "Package.wsf"),
		Jobs: []domain.Job{{ID: "a.js"}, {ID: "b.vbs"}},
	}

	job, ok := pkg.Job("b.vbs")
	require.True(t, ok)
	assert.Equal(t, "b.vbs", job.ID)

	_, ok = pkg.Job("c.wsf")
	assert.False(t, ok)

	assert.Equal(t, "proj", pkg.Dir())
}
