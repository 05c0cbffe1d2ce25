package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsg/internal/adapters/config"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func newLoader(t *testing.T, userPath string) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return &config.Loader{Logger: mockLogger, UserPath: userPath}, mockLogger
}

func names(reg *domain.Registry) []string {
	recs := reg.Recognizers()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestBuiltins_AreValidAndUnique(t *testing.T) {
	builtins := config.Builtins()
	require.Len(t, builtins, 10)

	for _, rec := range builtins {
		require.NoError(t, rec.Validate(), rec.Name)
	}

	reg, err := domain.NewRegistry(builtins...)
	require.NoError(t, err)
	assert.Equal(t, "Flutter", reg.Recognizers()[0].Name)
	assert.Equal(t, "NodeJS", reg.Recognizers()[1].Name)
}

func TestLoader_Load_NoConfigReturnsBuiltins(t *testing.T) {
	loader, _ := newLoader(t, "")

	reg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, len(config.Builtins()), reg.Len())
}

func TestLoader_Load_UserRecognizersAreAppended(t *testing.T) {
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, `
version: "1"
recognizers:
  - name: Bazel
    presence: [{file: WORKSPACE}, {file: MODULE.bazel}]
    deletable: [{dir: bazel-out}]
`)
	loader, _ := newLoader(t, "")

	reg, err := loader.Load(cwd)
	require.NoError(t, err)

	recs := reg.Recognizers()
	require.Len(t, recs, len(config.Builtins())+1)

	last := recs[len(recs)-1]
	assert.Equal(t, "Bazel", last.Name)
	assert.Equal(t, []domain.PathSignature{domain.File("WORKSPACE"), domain.File("MODULE.bazel")}, last.Presence)
	assert.Equal(t, []domain.PathSignature{domain.Dir("bazel-out")}, last.Deletable)
}

func TestLoader_Load_Disable(t *testing.T) {
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, `
version: "1"
disable: [zig, NodeJS, Cobol]
`)
	loader, mockLogger := newLoader(t, "")
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	reg, err := loader.Load(cwd)
	require.NoError(t, err)

	got := names(reg)
	assert.NotContains(t, got, "Zig")
	assert.NotContains(t, got, "NodeJS")
	assert.Len(t, got, len(config.Builtins())-2)
}

func TestLoader_Load_DisableEverything(t *testing.T) {
	cwd := t.TempDir()
	var all []string
	for _, rec := range config.Builtins() {
		all = append(all, rec.Name)
	}
	createFile(t, cwd, domain.ConfigFileName, "disable: ["+strings.Join(all, ", ")+"]\n")
	loader, _ := newLoader(t, "")

	_, err := loader.Load(cwd)
	require.ErrorIs(t, err, domain.ErrNoRecognizers)
}

func TestLoader_Load_UserConfigFallback(t *testing.T) {
	userDir := t.TempDir()
	userPath := createFile(t, userDir, filepath.Join(domain.ConfigDirName, domain.ConfigFileName), `
recognizers:
  - name: Terraform
    presence: [{file: main.tf}]
    deletable: [{dir: .terraform}]
`)
	loader, _ := newLoader(t, userPath)

	reg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, names(reg), "Terraform")
}

func TestLoader_Load_WorkingDirectoryWins(t *testing.T) {
	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, `
recognizers:
  - name: Local
    presence: [{file: local.marker}]
    deletable: [{dir: out}]
`)
	userPath := createFile(t, t.TempDir(), domain.ConfigFileName, `
recognizers:
  - name: Global
    presence: [{file: global.marker}]
    deletable: [{dir: out}]
`)
	loader, _ := newLoader(t, userPath)

	reg, err := loader.Load(cwd)
	require.NoError(t, err)
	assert.Contains(t, names(reg), "Local")
	assert.NotContains(t, names(reg), "Global")
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantIs   error
		contains string
	}{
		{
			name:     "malformed yaml",
			content:  "recognizers: [",
			contains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			wantIs:  domain.ErrUnsupportedConfigVersion,
		},
		{
			name: "missing name",
			content: `
recognizers:
  - presence: [{file: a}]
    deletable: [{dir: b}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "reserved name",
			content: `
recognizers:
  - name: All
    presence: [{file: a}]
    deletable: [{dir: b}]
`,
			wantIs: domain.ErrReservedRecognizerName,
		},
		{
			name: "empty deletable list",
			content: `
recognizers:
  - name: Empty
    presence: [{file: a}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "escaping marker",
			content: `
recognizers:
  - name: Escape
    presence: [{file: a}]
    deletable: [{dir: ../outside}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "absolute marker",
			content: `
recognizers:
  - name: Absolute
    presence: [{file: /etc/passwd}]
    deletable: [{dir: b}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "marker with both kinds",
			content: `
recognizers:
  - name: Both
    presence: [{file: a, dir: a}]
    deletable: [{dir: b}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "marker with no kind",
			content: `
recognizers:
  - name: Neither
    presence: [{}]
    deletable: [{dir: b}]
`,
			wantIs: domain.ErrInvalidRecognizer,
		},
		{
			name: "duplicate of a built-in",
			content: `
recognizers:
  - name: Rust
    presence: [{file: Cargo.toml}]
    deletable: [{dir: target}]
`,
			wantIs: domain.ErrDuplicateRecognizer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd := t.TempDir()
			createFile(t, cwd, domain.ConfigFileName, tt.content)
			loader, _ := newLoader(t, "")

			reg, err := loader.Load(cwd)
			require.Error(t, err)
			assert.Nil(t, reg)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestLoader_Load_UnreadableConfig(t *testing.T) {
	cwd := t.TempDir()
	// A directory where the file is expected cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(cwd, domain.ConfigFileName), domain.DirPerm))
	loader, _ := newLoader(t, "")

	_, err := loader.Load(cwd)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestNewLoader_UsesUserConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	assert.Equal(t, domain.UserConfigPath(), loader.UserPath)
}
