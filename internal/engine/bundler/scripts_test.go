package bundler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/wshpack/internal/core/ports/mocks"
	"go.trai.ch/wshpack/internal/engine/bundler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mockDeps struct {
	parser    *mocks.MockDescriptorParser
	reader    *mocks.MockSourceReader
	writer    *mocks.MockBundleWriter
	minifier  *mocks.MockMinifier
	resolver  *mocks.MockSourceResolver
	hasher    *mocks.MockHasher
	store     *mocks.MockBuildInfoStore
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
}

func newMocked(t *testing.T) (*bundler.Bundler, *mockDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mockDeps{
		parser:    mocks.NewMockDescriptorParser(ctrl),
		reader:    mocks.NewMockSourceReader(ctrl),
		writer:    mocks.NewMockBundleWriter(ctrl),
		minifier:  mocks.NewMockMinifier(ctrl),
		resolver:  mocks.NewMockSourceResolver(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockBuildInfoStore(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	b := bundler.New(m.parser, m.reader, m.writer, m.minifier, m.resolver, m.hasher, m.store, m.telemetry, m.logger)
	return b, m
}

func (m *mockDeps) expectSource(src, path, code string) {
	m.resolver.EXPECT().ResolveScript("/base", src).Return(path, nil)
	m.reader.EXPECT().ReadText(path, "").Return(code, nil)
}

func TestBundleScriptSrcs_Empty(t *testing.T) {
	b, _ := newMocked(t)
	opts := domain.DefaultBundleOptions()

	_, err := b.BundleJScriptSrcs(t.Context(), nil, opts)
	assert.True(t, errors.Is(err, domain.ErrEmptyArgument))

	_, err = b.BundleVBScriptSrcs(t.Context(), []string{}, opts)
	assert.True(t, errors.Is(err, domain.ErrEmptyArgument))

	_, err = b.BundleJScriptSrcs(t.Context(), []string{""}, opts)
	assert.True(t, errors.Is(err, domain.ErrEmptyArgument))
}

func TestBundleJScriptSrcs_MinifiesInOrder(t *testing.T) {
	b, m := newMocked(t)

	gomock.InOrder(
		m.resolver.EXPECT().ResolveScript("/base", "a.js").Return("/base/a.js", nil),
		m.resolver.EXPECT().ResolveScript("/base", "b.js").Return("/base/b.js", nil),
	)
	m.reader.EXPECT().ReadText("/base/a.js", "").Return("var a = 1;", nil)
	m.reader.EXPECT().ReadText("/base/b.js", "").Return("var b = 2;", nil)
	m.minifier.EXPECT().Minify(domain.JScript, "var a = 1;").Return("var a=1;", []string{"a.js: unused"}, nil)
	m.minifier.EXPECT().Minify(domain.JScript, "var b = 2;").Return("var b=2;", nil, nil)
	m.logger.EXPECT().Warn("a.js: unused")

	opts := domain.BundleOptions{BaseDir: "/base", Minify: true}
	code, err := b.BundleJScriptSrcs(t.Context(), []string{"a.js", "b.js"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "var a=1;\r\nvar b=2;\r\n", code)
}

func TestBundleJScriptSrcs_IgnoredSourcesAreNotResolved(t *testing.T) {
	b, m := newMocked(t)
	m.expectSource("keep.js", "/base/keep.js", "keep();")

	ignore, err := domain.CompileIgnore([]string{`SKIP\.js$`})
	require.NoError(t, err)

	opts := domain.BundleOptions{BaseDir: "/base", Ignore: ignore}
	code, err := b.BundleJScriptSrcs(t.Context(), []string{"skip.js", "keep.js"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "keep();\r\n", code)
}

func TestBundleVBScriptSrcs_HoistsOptionExplicit(t *testing.T) {
	b, m := newMocked(t)
	m.expectSource("a.vbs", "/base/a.vbs", "Option Explicit\r\nDim a\r\n")
	m.expectSource("b.vbs", "/base/b.vbs", "option explicit ' strict\r\nDim b")

	opts := domain.BundleOptions{BaseDir: "/base"}
	code, err := b.BundleVBScriptSrcs(t.Context(), []string{"a.vbs", "b.vbs"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "Option Explicit\r\nDim a\r\n\r\nDim b\r\n", code)
}

func TestBundleVBScriptSrcs_WithoutOptionExplicit(t *testing.T) {
	b, m := newMocked(t)
	m.expectSource("a.vbs", "/base/a.vbs", "Dim explicitValue")

	code, err := b.BundleVBScriptSrcs(t.Context(), []string{"a.vbs"}, domain.BundleOptions{BaseDir: "/base"})
	require.NoError(t, err)
	assert.Equal(t, "Dim explicitValue\r\n", code)
}

func TestBundleWsfJob_WrapsScripts(t *testing.T) {
	b, m := newMocked(t)
	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Source("/base/u.vbs")
	vertex.EXPECT().Warn("w1")

	m.expectSource("u.vbs", "/base/u.vbs", "Dim a ' c")
	m.minifier.EXPECT().Minify(domain.VBScript, "Dim a ' c").Return("Dim a ", nil, nil)
	m.minifier.EXPECT().Minify(domain.JScript, "x()").Return("x();", []string{"w1"}, nil)

	refs := []domain.ScriptRef{
		{Language: domain.VBScript, Src: "u.vbs"},
		{Language: domain.JScript, Inline: "x()"},
	}
	ctx := ports.ContextWithVertex(t.Context(), vertex)
	opts := domain.BundleOptions{BaseDir: "/base", Minify: true}

	code, err := b.BundleWsfJob(ctx, refs, opts, `<reference object="ADODB.Stream"/>`)
	require.NoError(t, err)

	want := "<package>\r\n" +
		"<job id=\"run\">\r\n" +
		"<reference object=\"ADODB.Stream\"/>\r\n" +
		"<script language=\"VBScript\">\r\nDim a \r\n</script>\r\n" +
		"<script language=\"JScript\">\r\nx();\r\n</script>\r\n" +
		"</job>\r\n" +
		"</package>\r\n"
	assert.Equal(t, want, code)
}

func TestBundleWsfJob_Errors(t *testing.T) {
	b, m := newMocked(t)

	_, err := b.BundleWsfJob(t.Context(), nil, domain.DefaultBundleOptions())
	assert.True(t, errors.Is(err, domain.ErrEmptyArgument))

	refs := []domain.ScriptRef{{Language: domain.LanguageUnknown, Inline: "x"}}
	_, err = b.BundleWsfJob(t.Context(), refs, domain.DefaultBundleOptions())
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))

	m.expectSource("bad.js", "/base/bad.js", "var =")
	m.minifier.EXPECT().Minify(domain.JScript, "var =").Return("", nil, zerr.Wrap(domain.ErrMinifyFailed, "syntax"))

	refs = []domain.ScriptRef{{Language: domain.JScript, Src: "bad.js"}}
	_, err = b.BundleWsfJob(t.Context(), refs, domain.BundleOptions{BaseDir: "/base", Minify: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMinifyFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "/base/bad.js", zErr.Metadata()["path"])
}

func TestResolveWsfPath(t *testing.T) {
	b, m := newMocked(t)
	m.resolver.EXPECT().ResolvePackage("proj").Return("/abs/proj/Package.wsf", nil)
	m.resolver.EXPECT().ResolvePackage("").Return("", zerr.Wrap(domain.ErrSourceRequired, "empty"))

	path, err := b.ResolveWsfPath("proj")
	require.NoError(t, err)
	assert.Equal(t, "/abs/proj/Package.wsf", path)

	_, err = b.ResolveWsfPath("")
	assert.True(t, errors.Is(err, domain.ErrSourceRequired))
}

func TestBundleWshFiles_CacheHitSkipsWrite(t *testing.T) {
	b, m := newMocked(t)
	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)

	pkg := &domain.Package{
		Path: "/proj/Package.wsf",
		Jobs: []domain.Job{{ID: "lib.js", Scripts: []domain.ScriptRef{{Language: domain.JScript, Src: "a.js"}}}},
	}
	m.resolver.EXPECT().ResolvePackage("/proj").Return(pkg.Path, nil)
	m.parser.EXPECT().Parse(pkg.Path).Return(pkg, nil)
	m.resolver.EXPECT().ResolveScript("/proj", "a.js").Return("/proj/a.js", nil)
	m.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any(), []string{"/proj/a.js"}).Return("in", nil)
	m.store.EXPECT().Get("/proj", "/proj/lib.js").Return(&domain.BuildInfo{InputHash: "in", OutputHash: "2a"}, nil)
	m.hasher.EXPECT().ComputeFileHash("/proj/lib.js").Return(uint64(42), nil)
	m.telemetry.EXPECT().Record(gomock.Any(), "lib.js").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		})
	vertex.EXPECT().Cached()
	vertex.EXPECT().Complete(nil)

	opts := domain.DefaultPackOptions()
	opts.Bundle.BaseDir = ""
	results, err := b.BundleWshFiles(t.Context(), "/proj", opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusCached, results[0].Status)
	assert.Equal(t, "/proj/lib.js", results[0].OutputPath)
}
