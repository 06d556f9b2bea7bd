// Package campusnav models a campus as named locations joined by weighted,
// undirected paths, and answers navigation questions about it.
//
// Everything lives in subpackages:
//
//	core/           the path graph: vertices, canonical edges, thread-safe CRUD
//	location/       the location registry: name, type, visit time
//	bfs/, dfs/      traversals, reachability, connected components
//	dijkstra/       shortest routes with deterministic tie-breaking
//	prim_kruskal/   minimum spanning trees
//	euler/          Eulerian path existence and trail construction
//	campus/         the Map facade: registry + graph kept in step, typed errors
//	loader/         CSV loading with per-row error reports
//	config/         YAML configuration and logger construction
//	cmd/campusnav/  the command-line tool and interactive shell
//
// Quick example:
//
//	m, _ := campus.New()
//	_ = m.AddLocation("Library", "Academic", 30)
//	_ = m.AddLocation("Gym", "Sports", 45)
//	_ = m.AddPath("Library", "Gym", 7)
//	r, _ := m.ShortestPath("Library", "Gym") // [Library Gym], weight 7
//
// Analyses run against a consistent snapshot; mutations are atomic.
package campusnav
