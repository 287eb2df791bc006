// Package recipe is the sample aggregate that exercises sqlrepo end to end:
// a root table with an author join, a tagged many-to-many relation, and a
// child ingredient collection, covering every filter/join/sort scenario
// spec §8 names.
package recipe
