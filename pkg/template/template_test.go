package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/fields"
	"github.com/arthur-debert/templatize/pkg/filesystem"
	"github.com/arthur-debert/templatize/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemTemplate(t *testing.T, content string) (*testutil.MemFS, *Template) {
	t.Helper()

	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/src/app.conf", content, 0644)

	tmpl, err := New(mem.FS, "app.conf", "/src", "/out")
	require.NoError(t, err)
	return mem, tmpl
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		fields  fields.FieldSet
		env     Environment
		envMode bool
		want    string
	}{
		{
			name:    "single_placeholder_round_trip",
			content: "%NAME%",
			fields:  fields.FieldSet{{Name: "NAME", Value: "value"}},
			want:    "value",
		},
		{
			name:    "every_occurrence_replaced",
			content: "%A%-%A% and %A%",
			fields:  fields.FieldSet{{Name: "A", Value: "x"}},
			want:    "x-x and x",
		},
		{
			name:    "sequential_not_simultaneous",
			content: "%A%",
			fields: fields.FieldSet{
				{Name: "A", Value: "%B%"},
				{Name: "B", Value: "x"},
			},
			want: "x",
		},
		{
			name:    "earlier_field_does_not_see_later_output",
			content: "%B%",
			fields: fields.FieldSet{
				{Name: "A", Value: "never"},
				{Name: "B", Value: "%A%"},
			},
			want: "%A%",
		},
		{
			name:    "first_duplicate_consumes_placeholder",
			content: "%NAME%",
			fields: fields.FieldSet{
				{Name: "NAME", Value: "first"},
				{Name: "NAME", Value: "second"},
			},
			want: "first",
		},
		{
			name:    "unknown_placeholder_untouched",
			content: "keep %UNKNOWN% here",
			fields:  fields.FieldSet{{Name: "KNOWN", Value: "x"}},
			want:    "keep %UNKNOWN% here",
		},
		{
			name:    "no_partial_or_whitespace_matches",
			content: "%NAME % % NAME% %NAMES% %name%",
			fields:  fields.FieldSet{{Name: "NAME", Value: "x"}},
			want:    "%NAME % % NAME% %NAMES% %name%",
		},
		{
			name:    "metacharacters_in_name_are_literal",
			content: "%A.B% %AXB% %C+%",
			fields: fields.FieldSet{
				{Name: "A.B", Value: "dot"},
				{Name: "C+", Value: "plus"},
			},
			want: "dot %AXB% plus",
		},
		{
			name:    "replacement_text_is_literal",
			content: "%A%",
			fields:  fields.FieldSet{{Name: "A", Value: "$1 ${x} \\n"}},
			want:    "$1 ${x} \\n",
		},
		{
			name:    "env_mode_resolves_value_as_variable_name",
			content: "home=%HOME_DIR% user=%USER_NAME%",
			fields: fields.FieldSet{
				{Name: "HOME_DIR", Value: "TEST_HOME"},
				{Name: "USER_NAME", Value: "NOT_SET_ANYWHERE"},
			},
			env:     Environment{"TEST_HOME": "/home/ada", "HOME_DIR": "wrong"},
			envMode: true,
			want:    "home=/home/ada user=NOT_SET_ANYWHERE",
		},
		{
			name:    "env_ignored_without_env_mode",
			content: "%HOME_DIR%",
			fields:  fields.FieldSet{{Name: "HOME_DIR", Value: "TEST_HOME"}},
			env:     Environment{"TEST_HOME": "/home/ada"},
			want:    "TEST_HOME",
		},
		{
			name:    "empty_name_matches_double_delimiter",
			content: "100%% sure",
			fields:  fields.FieldSet{{Name: "", Value: "-"}},
			want:    "100- sure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tmpl := newMemTemplate(t, tt.content)
			tmpl.ResolveFromEnv = tt.envMode

			got, err := tmpl.Render(tt.fields, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// stored content is never mutated
			again, err := tmpl.Render(tt.fields, tt.env)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestRenderInvalidPlaceholder(t *testing.T) {
	_, tmpl := newMemTemplate(t, "%A%")

	_, err := tmpl.Render(fields.FieldSet{{Name: "A", Value: "1"}, {Name: "\xff", Value: "2"}}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderInvalid))
	assert.Equal(t, "\xff", errors.GetErrorDetails(err)["field"])
}

func TestNew(t *testing.T) {
	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/src/a.txt", "a", 0644)

	t.Run("loads_content", func(t *testing.T) {
		tmpl, err := New(mem.FS, "a.txt", "/src", "")
		require.NoError(t, err)
		assert.True(t, tmpl.Loaded())
		assert.Equal(t, "/src/a.txt", tmpl.SourcePath())
		assert.Equal(t, "a.txt", tmpl.DestPath())
	})

	t.Run("missing_source_is_fatal", func(t *testing.T) {
		_, err := New(mem.FS, "missing.txt", "/src", "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("from_path_splits_dir_and_name", func(t *testing.T) {
		tmpl, err := FromPath(mem.FS, "/src/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "a.txt", tmpl.FileName)
		assert.Equal(t, "/src", tmpl.SourceDir)
		assert.Empty(t, tmpl.DestDir)
	})
}

func TestApplyDefaults(t *testing.T) {
	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/defaults/a.txt", "from defaults", 0644)
	mem.WriteFile(t, "/own/a.txt", "from own dir", 0644)

	t.Run("fills_empty_dirs", func(t *testing.T) {
		tmpl := Declare(mem.FS, Spec{FileName: "a.txt"})
		assert.False(t, tmpl.Loaded())

		tmpl.ApplySourceDir("/defaults")
		tmpl.ApplyDestDir("/out")

		assert.Equal(t, "/defaults", tmpl.SourceDir)
		assert.Equal(t, "/out", tmpl.DestDir)
		assert.True(t, tmpl.Loaded())
	})

	t.Run("never_overwrites_own_dirs", func(t *testing.T) {
		tmpl := Declare(mem.FS, Spec{FileName: "a.txt", SourceDir: "/own", DestDir: "/mine"})

		tmpl.ApplySourceDir("/defaults")
		tmpl.ApplyDestDir("/out")

		assert.Equal(t, "/own", tmpl.SourceDir)
		assert.Equal(t, "/mine", tmpl.DestDir)

		got, err := tmpl.Render(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "from own dir", got)
	})

	t.Run("failed_reread_leaves_template_empty", func(t *testing.T) {
		tmpl := Declare(mem.FS, Spec{FileName: "missing.txt"})
		tmpl.ApplySourceDir("/defaults")
		assert.False(t, tmpl.Loaded())
	})

	t.Run("dest_name_override", func(t *testing.T) {
		tmpl := Declare(mem.FS, Spec{FileName: "a.txt", DestDir: "/out", DestName: "b.txt"})
		assert.Equal(t, "/out/b.txt", tmpl.DestPath())
	})
}

func TestEvaluateMemFS(t *testing.T) {
	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/src/run.sh", "#!/bin/sh\necho %GREETING%\n", 0755)

	tmpl, err := New(mem.FS, "run.sh", "/src", "/out/nested")
	require.NoError(t, err)
	tmpl.DestName = "hello.sh"

	require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "GREETING", Value: "hi"}}, nil))

	assert.Equal(t, "#!/bin/sh\necho hi\n", mem.ReadFile(t, "/out/nested/hello.sh"))

	if supportsPermissions() {
		info, err := mem.Afero.Stat("/out/nested/hello.sh")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}

	// source is untouched and a second evaluation overwrites the output
	assert.Equal(t, "#!/bin/sh\necho %GREETING%\n", mem.ReadFile(t, "/src/run.sh"))
	require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "GREETING", Value: "bye"}}, nil))
	assert.Equal(t, "#!/bin/sh\necho bye\n", mem.ReadFile(t, "/out/nested/hello.sh"))
}

func TestEvaluateSkipsEmptyTemplate(t *testing.T) {
	mem := testutil.NewMemFS()

	tmpl := Declare(mem.FS, Spec{FileName: "ghost.txt", DestDir: "/out"})
	tmpl.ApplySourceDir("/nowhere")

	require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "A", Value: "1"}}, nil))
	assert.False(t, mem.Exists("/out/ghost.txt"))
	assert.False(t, mem.Exists("/out"), "no directory is created for a skipped template")
}

func TestEvaluateDisk(t *testing.T) {
	testutil.SkipOnWindows(t)

	fsys := filesystem.NewOS()

	t.Run("copies_permission_bits", func(t *testing.T) {
		for _, perm := range []os.FileMode{0600, 0640, 0750, 0755} {
			root := t.TempDir()
			testutil.CreateFile(t, root, "src/file", "mode %M%", perm)

			tmpl, err := New(fsys, "file", filepath.Join(root, "src"), filepath.Join(root, "dest"))
			require.NoError(t, err)
			require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "M", Value: perm.String()}}, nil))

			info, err := os.Stat(filepath.Join(root, "dest", "file"))
			require.NoError(t, err)
			assert.Equal(t, perm, info.Mode().Perm())
			assert.Equal(t, "mode "+perm.String(), testutil.ReadFile(t, filepath.Join(root, "dest", "file")))
		}
	})

	t.Run("read_only_source_still_renders", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateFile(t, root, "ro.txt", "%V%", 0444)

		tmpl, err := New(fsys, "ro.txt", root, filepath.Join(root, "out"))
		require.NoError(t, err)
		require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "V", Value: "done"}}, nil))

		dest := filepath.Join(root, "out", "ro.txt")
		assert.Equal(t, "done", testutil.ReadFile(t, dest))
		info, err := os.Stat(dest)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0444), info.Mode().Perm())
	})

	t.Run("dest_dir_creation_failure", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateFile(t, root, "src.txt", "x", 0644)
		testutil.CreateFile(t, root, "blocker", "i am a file", 0644)

		tmpl, err := New(fsys, "src.txt", root, filepath.Join(root, "blocker", "sub"))
		require.NoError(t, err)

		err = tmpl.Evaluate(nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	})

	t.Run("source_removed_after_load", func(t *testing.T) {
		root := t.TempDir()
		src := testutil.CreateFile(t, root, "gone.txt", "x", 0644)

		tmpl, err := New(fsys, "gone.txt", root, filepath.Join(root, "out"))
		require.NoError(t, err)
		require.NoError(t, os.Remove(src))

		err = tmpl.Evaluate(nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
		testutil.AssertNoFile(t, filepath.Join(root, "out", "gone.txt"))
	})
}

func TestEvaluateWithoutPermissionSupport(t *testing.T) {
	orig := supportsPermissions
	supportsPermissions = func() bool { return false }
	defer func() { supportsPermissions = orig }()

	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/src/x", "%A%", 0700)

	tmpl, err := New(mem.FS, "x", "/src", "/out")
	require.NoError(t, err)
	require.NoError(t, tmpl.Evaluate(fields.FieldSet{{Name: "A", Value: "1"}}, nil))

	assert.Equal(t, "1", mem.ReadFile(t, "/out/x"))
	info, err := mem.Afero.Stat("/out/x")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0666), info.Mode().Perm())
}

func TestEnvironment(t *testing.T) {
	env := EnvironmentFromList([]string{"A=1", "B=x=y", "A=2", "NOEQUALS", "=C:=C:\\", "EMPTY="})

	v, ok := env.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = env.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, "x=y", v)

	v, ok = env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = env.Lookup("NOEQUALS")
	assert.False(t, ok)

	t.Setenv("TEMPLATIZE_TEST_VAR", "present")
	v, ok = EnvironmentFromOS().Lookup("TEMPLATIZE_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "present", v)
}
