// Package visualize renders a drawn template's structure as an SVG
// tree, adapted from the dungeon generator's pkg/export SVG renderer:
// same svgo canvas, the same Options/DefaultOptions/Render*/Save*
// shape, applied to a strategy's decompose tree instead of a room graph.
package visualize
