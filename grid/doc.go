// Package grid addresses tiles in a world made of fixed-size square rooms.
//
// What:
//
//	A room is a 50×50 block of tiles. Rooms tile an unbounded-looking but
//	finite 256×256 room grid. Three address forms are provided:
//
//	  • Coord    – an in-room tile (x, y), both in [0, 50).
//	  • RoomID   – a room, packed as (rx<<8)|ry with rx = roomX+128 and
//	               ry = roomY+128; printable as "W1N1", "E0S0", ...
//	  • Position – a tile anywhere in the world, packed as
//	               (room<<16)|(x<<8)|y. The packed value is the canonical
//	               map key and the external interchange format.
//
//	Eight compass Directions describe moves between adjacent tiles, in the
//	canonical order Top, TopRight, Right, BottomRight, Bottom, BottomLeft,
//	Left, TopLeft.
//
// Room names:
//
//	East and south coordinates start at 0 (E0, S0), west and north ones at -1
//	(W0, N0). So "W1N1" is room (-2, -2) and "E0S0" is room (0, 0).
//	The packed value 0 is reserved for the simulation room, named "sim". It
//	is isolated: no move crosses its border.
//
// World coordinates:
//
//	World() flattens a Position into global tile coordinates
//	(rx*50 + x, ry*50 + y). Tiles on facing borders of two adjacent rooms are
//	world-adjacent, which is how multi-room searches stitch rooms together.
//
// Errors:
//
//	ErrCoordOutOfRange  – x or y outside [0, 50).
//	ErrRoomOutOfRange   – room coordinate outside [-128, 127] or reserved.
//	ErrInvalidRoomName  – a name that is not "sim" nor [WE]<n>[NS]<n>.
//	ErrInvalidPosition  – malformed "ROOM:x:y" text.
package grid
