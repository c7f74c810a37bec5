package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }
func (s *stubFrontend) Run(context.Context, Options) error {
	s.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("missing"))

	fe, err := Create("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "stub-a", fe.ID())
	require.NoError(t, fe.Run(context.Background(), Options{}))
	assert.True(t, fe.(*stubFrontend).ran)

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b"})
	assert.IsIncreasing(t, ids)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	assert.EqualError(t, err, `registry: unknown frontend "nope"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
	assert.Panics(t, func() {
		Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
	})
}
