// Package sqlrepo implements a generic SQL data-access core: a postfix-based
// filter operator registry, a per-aggregate filter column mapper, a filter
// validator with soft-delete injection, a join manager that deduplicates
// multi-hop joins, a chainable query builder, a generic repository
// (add/get/query/persist/persist_all), and a tag filter builder for
// many-to-many polymorphic tags.
//
// The package has no process-level surface of its own. It is given a
// Session/UnitOfWork by the host and a DataMapper by each aggregate; see
// session.go and repository.go for those boundaries.
package sqlrepo
