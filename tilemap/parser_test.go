package tilemap

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

// tmxDoc assembles a minimal orthogonal TMX document with one inline
// tileset and the given layer/objectgroup fragments.
func tmxDoc(width, height, tileSize int, body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="%d" tileheight="%d" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="%d" tileheight="%d" tilecount="4" columns="2">
  <image source="tiles.png" width="32" height="32"/>
 </tileset>
%s
</map>`, width, height, tileSize, tileSize, tileSize, tileSize, body)
}

func csvLayer(name string, width, height int, gids []int) string {
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		cells := make([]string, width)
		for x := 0; x < width; x++ {
			cells[x] = fmt.Sprintf("%d", gids[y*width+x])
		}
		rows[y] = strings.Join(cells, ",")
	}
	return fmt.Sprintf(` <layer id="1" name="%s" width="%d" height="%d">
  <data encoding="csv">
%s
  </data>
 </layer>`, name, width, height, strings.Join(rows, ",\n"))
}

func levelFS(name, content string) fstest.MapFS {
	return fstest.MapFS{
		name: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestParseLevelFile(t *testing.T) {
	gids := make([]int, 6*4)
	gids[3*6+0] = 1 // bottom-left floor tile
	gids[3*6+1] = 2

	body := csvLayer("collision", 6, 4, gids) + `
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="40"/>
 </objectgroup>
 <objectgroup id="3" name="Transitions">
  <object id="2" x="80" y="16" width="16" height="32">
   <properties><property name="target" value="level_2"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Hazards">
  <object id="3" x="0" y="56" width="96" height="8"/>
 </objectgroup>`

	file, err := ParseLevelFile(levelFS("level_1.tmx", tmxDoc(6, 4, 16, body)), "level_1.tmx")
	if err != nil {
		t.Fatalf("ParseLevelFile: %v", err)
	}

	if file.Name != "level_1" {
		t.Errorf("Name = %q", file.Name)
	}
	if file.PixelWidth != 96 || file.PixelHeight != 64 {
		t.Errorf("pixel size = %dx%d, want 96x64", file.PixelWidth, file.PixelHeight)
	}

	layer, err := file.FindLayer("collision")
	if err != nil {
		t.Fatalf("FindLayer: %v", err)
	}
	if layer.CellSize != 16 || layer.Width != 6 || layer.Height != 4 {
		t.Fatalf("layer geometry = %d/%dx%d", layer.CellSize, layer.Width, layer.Height)
	}
	// Authored tiles stay non-zero, empty cells stay zero.
	if v, _ := layer.Value(0, 3); v == 0 {
		t.Error("authored cell (0,3) parsed as empty")
	}
	if v, _ := layer.Value(1, 3); v == 0 {
		t.Error("authored cell (1,3) parsed as empty")
	}
	if v, _ := layer.Value(0, 0); v != 0 {
		t.Errorf("empty cell (0,0) parsed as %d", v)
	}
	if _, err := layer.Value(6, 0); err == nil {
		t.Error("out-of-range cell access should be rejected")
	}

	if len(file.Spawns) != 1 || file.Spawns[0].X != 24 || file.Spawns[0].Y != 40 {
		t.Errorf("spawns = %+v", file.Spawns)
	}
	if len(file.Transitions) != 1 || file.Transitions[0].Target != "level_2" {
		t.Errorf("transitions = %+v", file.Transitions)
	}
	if len(file.Hazards) != 1 || file.Hazards[0].W != 96 {
		t.Errorf("hazards = %+v", file.Hazards)
	}
}

func TestParseLevelFileErrors(t *testing.T) {
	valid := tmxDoc(4, 4, 16, csvLayer("collision", 4, 4, make([]int, 16)))

	tests := []struct {
		name    string
		path    string
		content string
		want    error
	}{
		{"file absent", "nope.tmx", valid, ErrMalformedLevelFile},
		{"broken xml", "level_1.tmx", "<map><layer", ErrMalformedLevelFile},
		{"not a map", "level_1.tmx", "<tileset/>", ErrMalformedLevelFile},
		{
			"transition without target",
			"level_1.tmx",
			tmxDoc(4, 4, 16, csvLayer("collision", 4, 4, make([]int, 16))+`
 <objectgroup id="2" name="Transitions">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>`),
			ErrMalformedLevelFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseLevelFile(levelFS("level_1.tmx", tt.content), tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if file != nil {
				t.Error("failed parse must not return partial results")
			}
		})
	}
}

func TestParseLevelFilePreservesCause(t *testing.T) {
	_, err := ParseLevelFile(levelFS("level_1.tmx", "x"), "nope.tmx")
	if !errors.Is(err, ErrMalformedLevelFile) {
		t.Fatalf("err = %v, want ErrMalformedLevelFile", err)
	}
	// The underlying cause stays in the chain for callers that care.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestFindLayerMissing(t *testing.T) {
	file, err := ParseLevelFile(
		levelFS("level_1.tmx", tmxDoc(4, 4, 16, csvLayer("decor", 4, 4, make([]int, 16)))),
		"level_1.tmx")
	if err != nil {
		t.Fatalf("ParseLevelFile: %v", err)
	}
	if _, err := file.FindLayer("collision"); !errors.Is(err, ErrMissingLayer) {
		t.Errorf("err = %v, want ErrMissingLayer", err)
	}
}
