package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".occu", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[shell]
prompt = "$ "

[display]
timestamp_format = "15:04"
color = false
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "$ ", store.GetString("shell.prompt"))
	assert.Equal(t, "15:04", store.GetString("display.timestamp_format"))
	val, ok := store.Get("display.color")
	assert.True(t, ok)
	assert.Equal(t, false, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("shell.prompt", "> "))
	require.NoError(t, store.Set("display.color", true))

	assert.Equal(t, "> ", store.GetString("shell.prompt"))
	assert.Equal(t, "", store.GetString("display.color"))
	assert.True(t, store.GetBool("display.color"))
	assert.False(t, store.GetBool("shell.prompt"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Set_WritesNestedTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("shell.prompt", "occu> "))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[shell]")
	assert.Contains(t, string(raw), "prompt = ")
	assert.Contains(t, string(raw), "occu> ")
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("shell.prompt", "# "))
	require.NoError(t, store1.Set("display.color", false))
	require.NoError(t, store1.Set("top", "level"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "# ", store2.GetString("shell.prompt"))
	_, ok := store2.Get("display.color")
	assert.True(t, ok)
	assert.False(t, store2.GetBool("display.color"))
	assert.Equal(t, "level", store2.GetString("top"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")
	assert.Error(t, err)
	_, ok := store.Get("another")
	assert.False(t, ok, "failed writes leave memory unchanged")
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	err = store.Load()
	assert.Error(t, err)
	assert.Equal(t, "data", store.GetString("valid"), "previous values kept")
}

func TestConfigStore_Load_MissingFileResets(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, store.Load())

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("shell.prompt", "> ")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("shell.prompt")
		}()
	}
	wg.Wait()

	assert.Equal(t, "> ", store.GetString("shell.prompt"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": int64(1),
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, flat)
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "simple",
			flat: map[string]any{"shell.prompt": "> ", "display.color": true},
			want: map[string]any{
				"shell":   map[string]any{"prompt": "> "},
				"display": map[string]any{"color": true},
			},
		},
		{
			name: "shared table",
			flat: map[string]any{"display.color": true, "display.timestamp_format": "15:04"},
			want: map[string]any{
				"display": map[string]any{"color": true, "timestamp_format": "15:04"},
			},
		},
		{
			name: "scalar prefix stays dotted",
			flat: map[string]any{"a": "scalar", "a.b": "leaf"},
			want: map[string]any{"a": "scalar", "a.b": "leaf"},
		},
		{
			name: "top level",
			flat: map[string]any{"k": int64(2)},
			want: map[string]any{"k": int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nestMap(tt.flat)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.flat, flattenMap(got, ""), "flatten(nest(x)) == x")
		})
	}
}

func TestConfigStore_IsConfigChange(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	other := filepath.Join(filepath.Dir(store.Path()), "other.toml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: store.Path(), Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: store.Path(), Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: store.Path(), Op: fsnotify.Rename}, true},
		{"remove", fsnotify.Event{Name: store.Path(), Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: store.Path(), Op: fsnotify.Chmod}, false},
		{"write and chmod", fsnotify.Event{Name: store.Path(), Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"other file", fsnotify.Event{Name: other, Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.isConfigChange(tt.event))
		})
	}
}

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[shell]\nprompt = '>> '\n"), 0600))

	// A create and a write may each trigger a reload; wait for the final content.
	assert.Eventually(t, func() bool {
		return store.GetString("shell.prompt") == ">> "
	}, 5*time.Second, 20*time.Millisecond)
	assert.NotEmpty(t, reloaded, "onReload called")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestConfigStore_Watch_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	err = store.Watch(context.Background(), nil)
	assert.Error(t, err)
}
