package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"model", "MODEL"},
		{"  *Paper_Space ", "*PAPER_SPACE"},
		{"Ebene-ä", "EBENE-Ä"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestBlockLookupIgnoresCase(t *testing.T) {
	s := &Scene{Blocks: map[string]*Block{"Door": {Name: "Door"}}}

	b, ok := s.Block("DOOR")
	require.True(t, ok)
	assert.Equal(t, "Door", b.Name)

	_, ok = s.Block("window")
	assert.False(t, ok)
	_, ok = (*Scene)(nil).Block("Door")
	assert.False(t, ok)
}

func TestColorFromDXF(t *testing.T) {
	assert.True(t, ColorFromDXF(256).IsByLayer())
	assert.True(t, ColorFromDXF(0).IsByBlock())
	assert.Equal(t, ColorIndex(5), ColorFromDXF(5))
	assert.True(t, ColorIndex(0).IsByLayer())
}

func TestEntitiesReportKind(t *testing.T) {
	ents := []Entity{&Line{}, &Attrib{}, &Hatch{}, &Insert{}, &Dimension{}}
	want := []string{"LINE", "ATTRIB", "HATCH", "INSERT", "DIMENSION"}
	for i, e := range ents {
		assert.Equal(t, want[i], e.Kind().String())
		assert.NotNil(t, e.Base())
	}
	assert.Equal(t, "UNKNOWN", Kind(250).String())
}

func TestLayoutEntities(t *testing.T) {
	s := &Scene{
		Tables: Tables{Layouts: []Layout{
			{Name: "Model", Handle: "1F", BlockRecord: "1A"},
			{Name: "Layout2", Handle: "30", BlockRecord: "2B", TabOrder: 2},
			{Name: "Layout1", Handle: "20", BlockRecord: "1E", TabOrder: 1},
		}},
		Entities: []Entity{
			&Line{Common: Common{Handle: "A"}},
			&Line{Common: Common{Handle: "B", PaperSpace: true, Owner: "1e"}},
			&Line{Common: Common{Handle: "C", PaperSpace: true}},
			&Line{Common: Common{Handle: "D", PaperSpace: true, Owner: "2B"}},
		},
	}

	assert.Len(t, s.ModelEntities(), 1)
	first := s.Tables.FirstPaperLayout()
	require.NotNil(t, first)
	assert.Equal(t, "Layout1", first.Name)

	l1, ok := s.Tables.Layout("layout1")
	require.True(t, ok)
	var handles []string
	for _, e := range s.LayoutEntities(l1) {
		handles = append(handles, e.Base().Handle)
	}
	assert.Equal(t, []string{"B", "C"}, handles)

	l2, ok := s.Tables.Layout("2b")
	require.True(t, ok)
	assert.Len(t, s.LayoutEntities(l2), 1)
}
