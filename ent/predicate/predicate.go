// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// EnrichmentAudit is the predicate function for enrichmentaudit builders.
type EnrichmentAudit func(*sql.Selector)

// Mastery is the predicate function for mastery builders.
type Mastery func(*sql.Selector)

// PYQQuestion is the predicate function for pyqquestion builders.
type PYQQuestion func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// SessionQuestion is the predicate function for sessionquestion builders.
type SessionQuestion func(*sql.Selector)

// StudentCounter is the predicate function for studentcounter builders.
type StudentCounter func(*sql.Selector)

// StudentCoverage is the predicate function for studentcoverage builders.
type StudentCoverage func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
