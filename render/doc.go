// Package render draws a maze and a found path as a sequence of raster
// frames and encodes them as an animated GIF.
//
// What:
//
//   - Frames rasterizes the grid once, then produces one frame per path
//     prefix: frame 0 shows the bare maze, frame i shows the first i path
//     cells. Start and goal are always painted last in their own colors.
//   - ExportGIF quantizes every frame onto a small exact palette and writes
//     an infinitely looping animation.
//   - WriteGIFFile is ExportGIF into a freshly created file.
//
// Colors (DefaultPalette):
//
//	obstacle  black
//	free      white (cost 1)
//	weighted  gray, darker as the cost grows
//	path      blue
//	start     green
//	goal      red
//
// Complexity:
//
//   - Frames: O(F * W * H * CellSize^2) pixels for F = len(path)+1 frames.
//
// Errors:
//
//   - ErrNilGrid         if grid is nil.
//   - ErrEmptyPath       if there is nothing to animate.
//   - ErrInvalidOptions  for a non-positive cell size or negative delay.
//   - gridgraph.ErrCellOutOfBounds (wrapped) for endpoints or path cells
//     outside the grid.
package render
