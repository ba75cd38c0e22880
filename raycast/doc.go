// Package raycast provides a minimal scene ray-query collaborator for
// worldui: a [World] of textured quad colliders and a perspective [Camera]
// that builds rays through screen positions.
//
// It exists so a surface can be exercised without a physics engine. Quads
// carry a collision layer and a UV mapping fixed by their corner and edge
// vectors; the hit UV is reported exactly as that mapping defines it.
package raycast
