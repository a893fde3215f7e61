// Package testutils provides in-memory store implementations and fixture
// data for tests that exercise services and HTTP handlers without a database.
//
// Build a Dataset, add rows the way the migrations would insert them, and
// hand its stores to the services:
//
//	ds := testutils.NewDataset()
//	earth := ds.AddSkill("Earthbending", domain.SkillTypeBending, nil)
//	ds.AddSkill("Metalbending", domain.SkillTypeBending, &earth)
//
//	skills, err := service.NewSkillService(ds.SkillStore(), testutils.NoTxRunner, nil)
//
// The stores honor the same ordering, paging, and not-found contracts as the
// postgres implementations.
package testutils
