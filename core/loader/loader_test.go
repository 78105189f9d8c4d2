package loader

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	first := &fakeFeature{name: "first", enabled: true}
	skipped := &fakeFeature{name: "skipped", enabled: false}
	second := &fakeFeature{name: "second", enabled: true}

	m := NewManager(zap.NewNop())
	m.Register(first)
	m.Register(skipped)
	m.Register(second)

	err := m.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.True(t, first.loaded)
	assert.False(t, skipped.loaded)
	assert.True(t, second.loaded)
}

func TestManager_LoadAll_StopsOnError(t *testing.T) {
	failing := &fakeFeature{name: "broken", enabled: true, loadErr: fmt.Errorf("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	m := NewManager(nil)
	m.Register(failing)
	m.Register(after)

	err := m.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
