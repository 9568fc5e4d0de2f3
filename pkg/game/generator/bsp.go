package generator

import (
	"math/rand"

	"quadrogue/pkg/engine/world"
)

// BSPGenerator generates levels using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Generate creates a level of the same extent as the quadtree generator,
// split with BSP and joined by L-shaped corridors
func (g *BSPGenerator) Generate(cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.rng()
	log := cfg.logger().With("generator", "bsp")

	size := cfg.LevelSize()
	level := world.NewLevel(size, cfg.FillTile)

	// Leave a 1 cell border around the outside
	root := &bspNode{
		x:      1,
		y:      1,
		width:  size.X - 2,
		height: size.Y - 2,
	}
	if root.width < minNodeSize || root.height < minNodeSize {
		return nil, &ConfigurationError{Field: "depth", Reason: "level too small for BSP rooms"}
	}

	splitBSP(root, minNodeSize, rng)
	createRooms(root, rng)

	if err := carveRooms(level, root, cfg.WallTile); err != nil {
		return nil, err
	}

	door := cfg.DoorTile
	if door < 0 {
		door = cfg.FloorTile
	}
	c := corridorCarver{level: level, wall: cfg.WallTile, floor: cfg.FloorTile, door: door}
	connectRooms(c, root, rng)

	rooms := collectRooms(root)
	dungeon := &Dungeon{Level: level, Start: world.V(1, 1)}
	for _, room := range rooms {
		dungeon.Rooms = append(dungeon.Rooms, *room)
	}
	if len(rooms) > 0 {
		// Start in the middle of a random room
		startRoom := rooms[rng.Intn(len(rooms))]
		dungeon.Start = startRoom.Pos.Add(startRoom.Size.Div(2))
	}

	log.Info("generated level", "size", level.Size, "rooms", len(dungeon.Rooms))
	return dungeon, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// createRooms places one room inside every leaf node. The outline
// [x, x+width] stays strictly inside the node.
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(node.left, rng)
		}
		if node.right != nil {
			createRooms(node.right, rng)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	if roomWidth > node.width-roomPadding {
		roomWidth = node.width - roomPadding
	}
	if roomHeight > node.height-roomPadding {
		roomHeight = node.height - roomPadding
	}

	node.room = &Room{
		Pos:   world.V(node.x+rng.Intn(node.width-roomWidth), node.y+rng.Intn(node.height-roomHeight)),
		Size:  world.V(roomWidth, roomHeight),
		Class: -1,
	}
}

// carveRooms outlines every room with the wall tile
func carveRooms(level *world.Level, node *bspNode, wall int) error {
	if node.room != nil {
		if err := level.MakeRoom(node.room.Pos, node.room.Size, wall); err != nil {
			return err
		}
	}
	if node.left != nil {
		if err := carveRooms(level, node.left, wall); err != nil {
			return err
		}
	}
	if node.right != nil {
		return carveRooms(level, node.right, wall)
	}
	return nil
}

// corridorCarver lays corridor tiles, turning any wall it crosses into a door
type corridorCarver struct {
	level             *world.Level
	wall, floor, door int
}

func (c corridorCarver) carve(p world.Vec) {
	tile, err := c.level.Get(p)
	if err != nil {
		return
	}
	if tile == c.wall {
		c.level.Set(p, c.door)
		return
	}
	if tile != c.door {
		c.level.Set(p, c.floor)
	}
}

func (c corridorCarver) horizontal(row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		c.carve(world.V(col, row))
	}
}

func (c corridorCarver) vertical(col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		c.carve(world.V(col, row))
	}
}

// connectRooms connects sibling subtrees with L-shaped corridors
func connectRooms(c corridorCarver, node *bspNode, rng *rand.Rand) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(node.left, rng)
	rightRoom := getRoom(node.right, rng)

	if leftRoom != nil && rightRoom != nil {
		from := leftRoom.Pos.Add(leftRoom.Size.Div(2))
		to := rightRoom.Pos.Add(rightRoom.Size.Div(2))

		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			c.horizontal(from.Y, from.X, to.X)
			c.vertical(to.X, from.Y, to.Y)
		} else {
			// Vertical first, then horizontal
			c.vertical(from.X, from.Y, to.Y)
			c.horizontal(to.Y, from.X, to.X)
		}
	}

	connectRooms(c, node.left, rng)
	connectRooms(c, node.right, rng)
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(node *bspNode, rng *rand.Rand) *Room {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *Room
	if node.left != nil {
		leftRoom = getRoom(node.left, rng)
	}
	if node.right != nil {
		rightRoom = getRoom(node.right, rng)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*Room {
	var rooms []*Room

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
