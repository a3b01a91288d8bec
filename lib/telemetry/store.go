// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"sync"
	"time"
)

// GroupTimes records when each snapshot group last accepted a sample.
// The zero time means the group has never updated. The render loop
// compares these against its clock to mark panels stale.
type GroupTimes struct {
	Flight time.Time
	Engine time.Time
	Mech   time.Time
}

// For returns the update time for a group.
func (t GroupTimes) For(group Group) time.Time {
	switch group {
	case GroupFlight:
		return t.Flight
	case GroupEngine:
		return t.Engine
	case GroupMech:
		return t.Mech
	default:
		return time.Time{}
	}
}

// Store owns the live Snapshot. It is written by exactly one goroutine
// (the ingestion task, via the Normalizer) and read by exactly one
// other (the render loop). A reader never observes a torn group: each
// group write happens entirely under the write lock, and Read copies
// the whole snapshot under the read lock.
//
// The two loops' cadences are intentionally uncorrelated; no ordering
// is promised between a write and the next read beyond that per-group
// consistency.
type Store struct {
	mutex    sync.RWMutex
	snapshot Snapshot
	updated  GroupTimes
}

// NewStore returns a Store with every field absent.
func NewStore() *Store {
	return &Store{}
}

// Update applies mutate to the snapshot and stamps the group's update
// time. Mutate runs under the write lock and must not block; it only
// assigns fields. Fields the mutation does not touch keep their
// previous values — updates merge, they do not replace.
func (s *Store) Update(group Group, now time.Time, mutate func(*Snapshot)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mutate(&s.snapshot)
	switch group {
	case GroupFlight:
		s.updated.Flight = now
	case GroupEngine:
		s.updated.Engine = now
	case GroupMech:
		s.updated.Mech = now
	}
}

// Read returns a consistent point-in-time copy of the snapshot and the
// per-group update times. The copy shares no memory with the live
// snapshot.
func (s *Store) Read() (Snapshot, GroupTimes) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot, s.updated
}
