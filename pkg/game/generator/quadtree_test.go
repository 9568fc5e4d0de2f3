package generator

import (
	"errors"
	"math/rand"
	"testing"

	"quadrogue/pkg/engine/quadtree"
	"quadrogue/pkg/engine/world"
)

func TestGrow_DepthAndPayloadBounds(t *testing.T) {
	weights := DefaultWeights()
	for n := 1; n <= 5; n++ {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			tree := quadtree.New(n)
			if err := Grow(tree, n, weights, rng); err != nil {
				t.Fatalf("Grow(n=%d) = %v", n, err)
			}
			if d := tree.Depth(); d < 1 || d > n {
				t.Errorf("n=%d seed=%d: depth %d, want 1..%d", n, seed, d, n)
			}
			for e := range tree.Entries() {
				if e.Value < 0 || e.Value > n-1 {
					t.Errorf("n=%d seed=%d: leaf value %d outside [0,%d]", n, seed, e.Value, n-1)
				}
				if e.Value != n-e.Depth {
					t.Errorf("n=%d seed=%d: leaf at depth %d holds class %d, want %d", n, seed, e.Depth, e.Value, n-e.Depth)
				}
			}
		}
	}
}

func TestGrow_DepthOneTerminates(t *testing.T) {
	// Even a certain weight must not recurse below n=1
	tree := quadtree.New(9)
	if err := Grow(tree, 1, []float64{1, 1}, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Grow = %v", err)
	}
	if tree.Depth() != 1 || tree.Leaves() != 4 {
		t.Fatalf("depth %d with %d leaves, want 1 and 4", tree.Depth(), tree.Leaves())
	}
	for e := range tree.Entries() {
		if e.Value != 0 {
			t.Errorf("leaf %d holds %d, want 0", e.Path, e.Value)
		}
	}
}

func TestGrow_DrawsOncePerChild(t *testing.T) {
	// n=1 never recurses but still consumes one draw per child
	rng := rand.New(rand.NewSource(3))
	if err := Grow(quadtree.New(0), 1, DefaultWeights(), rng); err != nil {
		t.Fatalf("Grow = %v", err)
	}

	want := rand.New(rand.NewSource(3))
	for range quadtree.Quadrants {
		want.Float64()
	}
	if got, next := rng.Float64(), want.Float64(); got != next {
		t.Errorf("after Grow(n=1) the stream is at %v, want %v", got, next)
	}
}

func TestGrow_RejectsTooDeep(t *testing.T) {
	weights := make([]float64, quadtree.MaxLevels+2)
	err := Grow(quadtree.New(0), quadtree.MaxLevels+1, weights, rand.New(rand.NewSource(1)))
	if !errors.Is(err, quadtree.ErrTooDeep) {
		t.Errorf("Grow = %v, want ErrTooDeep", err)
	}
}

func TestGrow_CertainWeightsFillTree(t *testing.T) {
	weights := []float64{1, 1, 1, 1, 1, 1}
	tree := quadtree.New(0)
	if err := Grow(tree, 5, weights, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Grow = %v", err)
	}
	if got := tree.Leaves(); got != 1<<10 {
		t.Errorf("leaves = %d, want %d", got, 1<<10)
	}
}

func TestDecode_Corners(t *testing.T) {
	if got := Decode(0, 5); got != world.V(0, 0) {
		t.Errorf("Decode(0) = %v, want (0,0)", got)
	}

	var far quadtree.Path
	for level := 0; level < 5; level++ {
		far = far.With(level, 3)
	}
	if got := Decode(far, 5); got != world.V(62, 62) {
		t.Errorf("Decode(max) = %v, want (62,62)", got)
	}

	// First level picks the half of the macro-cell
	if got := Decode(quadtree.Path(0).With(0, 2), 5); got != world.V(32, 0) {
		t.Errorf("Decode(q=2) = %v, want (32,0)", got)
	}
	if got := Decode(quadtree.Path(0).With(0, 1), 5); got != world.V(0, 32) {
		t.Errorf("Decode(q=1) = %v, want (0,32)", got)
	}
}

func TestDecode_Bijection(t *testing.T) {
	const depth = 5
	seen := make(map[world.Vec]quadtree.Path)
	for p := quadtree.Path(0); p < 1<<(2*depth); p++ {
		pos := Decode(p, depth)
		if pos.X%2 != 0 || pos.Y%2 != 0 || pos.X < 0 || pos.Y < 0 || pos.X > 62 || pos.Y > 62 {
			t.Fatalf("Decode(%d) = %v, want an even cell inside the macro-cell", p, pos)
		}
		if prev, ok := seen[pos]; ok {
			t.Fatalf("Decode(%d) and Decode(%d) both give %v", prev, p, pos)
		}
		seen[pos] = p
		if back := Encode(pos, depth); back != p {
			t.Fatalf("Encode(Decode(%d)) = %d", p, back)
		}
	}
	if len(seen) != 32*32 {
		t.Errorf("decoded %d cells, want %d", len(seen), 32*32)
	}
}

func TestQuadtreeGenerate_DefaultLayout(t *testing.T) {
	cfg := testConfig(42)
	dungeon, err := Quadtree.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate = %v", err)
	}
	if dungeon.Level.Size != world.V(129, 65) {
		t.Errorf("level size = %v, want (129,65)", dungeon.Level.Size)
	}

	// Rooms tile both macro-cells exactly
	area := 0
	for _, room := range dungeon.Rooms {
		area += room.Size.Area()
		if room.Size.X != RoomSize(room.Class) {
			t.Errorf("room class %d has size %v", room.Class, room.Size)
		}
		if room.Pos.X%room.Size.X != 0 || room.Pos.Y%room.Size.Y != 0 {
			t.Errorf("room at %v is not aligned to its size %v", room.Pos, room.Size)
		}
	}
	if area != 2*64*64 {
		t.Errorf("rooms cover %d tiles, want %d", area, 2*64*64)
	}

	if tile, _ := dungeon.Level.Get(world.V(0, 0)); tile != testWall {
		t.Errorf("corner tile = %d, want wall", tile)
	}
	if tile, _ := dungeon.Level.Get(world.V(128, 64)); tile != testWall {
		t.Errorf("far corner tile = %d, want wall", tile)
	}
	if tile, _ := dungeon.Level.Get(dungeon.Start); tile != testFill {
		t.Errorf("start tile = %d, want floor fill", tile)
	}
}

func TestQuadtreeGenerate_DoorsConnectEveryRoom(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		dungeon, err := Quadtree.Generate(testConfig(seed))
		if err != nil {
			t.Fatalf("Generate = %v", err)
		}
		seen := reachable(dungeon.Level, dungeon.Start)
		dungeon.Level.ForEachCell(func(p world.Vec, tile int) {
			if tile != testWall && !seen[p] {
				t.Errorf("seed %d: cell %v is cut off from the start", seed, p)
			}
		})
	}
}

func TestPunchDoorsOutsideLevel(t *testing.T) {
	level := world.NewLevel(world.V(3, 3), testFill)
	err := punchDoors(level, Room{Pos: world.V(4, 4), Size: world.V(2, 2)}, testDoor)
	var boundsErr *world.GridBoundsError
	if !errors.As(err, &boundsErr) {
		t.Errorf("punchDoors = %v, want GridBoundsError", err)
	}
}

func TestQuadtreeGenerate_NoDoors(t *testing.T) {
	cfg := testConfig(1)
	cfg.DoorTile = -1
	dungeon, err := Quadtree.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate = %v", err)
	}
	dungeon.Level.ForEachCell(func(p world.Vec, tile int) {
		if tile != testWall && tile != testFill {
			t.Errorf("cell %v = %d, want only wall and fill", p, tile)
		}
	})
}

func TestQuadtreeGenerate_Deterministic(t *testing.T) {
	a, _ := Quadtree.Generate(testConfig(11))
	b, _ := Quadtree.Generate(testConfig(11))
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("same seed gave %d and %d rooms", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"zero depth", func(c *Config) { c.Depth = 0 }, "depth"},
		{"depth beyond weights", func(c *Config) { c.Depth = 6 }, "depth"},
		{"no macro-cells", func(c *Config) { c.MacroCells = 0 }, "macro_cells"},
		{"bad weight", func(c *Config) { c.Weights = []float64{0, 0.1, 2, 0.7, 0.9, 1} }, "weights"},
		{"negative wall", func(c *Config) { c.WallTile = -1 }, "wall_tile"},
		{"too many macro-cells", func(c *Config) { c.MacroCells = 1 << 30 }, "macro_cells"},
		{"level too large", func(c *Config) { c.Depth = 16; c.Weights = make([]float64, 17) }, "macro_cells"},
	}
	for _, c := range cases {
		cfg := testConfig(1)
		c.edit(&cfg)

		err := cfg.Validate()
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: Validate = %v, want ConfigurationError", c.name, err)
			continue
		}
		if cfgErr.Field != c.field {
			t.Errorf("%s: field = %q, want %q", c.name, cfgErr.Field, c.field)
		}
	}

	if err := testConfig(1).Validate(); err != nil {
		t.Errorf("default config: Validate = %v", err)
	}
}

func TestCarve_OutOfBoundsAborts(t *testing.T) {
	level := world.NewLevel(world.V(65, 65), 0)
	tree := quadtree.New(5)

	_, err := Carve(level, tree, 5, world.V(64, 0), 1)
	var boundsErr *world.GridBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("Carve past the edge = %v, want GridBoundsError", err)
	}
}

func TestByName(t *testing.T) {
	if g, err := ByName("bsp"); err != nil || g != BSP {
		t.Errorf("ByName(bsp) = %v, %v", g, err)
	}
	if g, err := ByName(""); err != nil || g != DefaultGenerator {
		t.Errorf("ByName(\"\") = %v, %v", g, err)
	}
	if _, err := ByName("maze"); err == nil {
		t.Error("ByName(maze) = nil error")
	}
}
