// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/ent/pyqquestion"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/ent/schema"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studentcounter"
	"github.com/prepforge/quanta/ent/studentcoverage"
	"github.com/prepforge/quanta/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[6].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	enrichmentauditFields := schema.EnrichmentAudit{}.Fields()
	_ = enrichmentauditFields
	// enrichmentauditDescAttempt is the schema descriptor for attempt field.
	enrichmentauditDescAttempt := enrichmentauditFields[5].Descriptor()
	// enrichmentaudit.DefaultAttempt holds the default value on creation for the attempt field.
	enrichmentaudit.DefaultAttempt = enrichmentauditDescAttempt.Default.(int)
	// enrichmentauditDescRateLimited is the schema descriptor for rate_limited field.
	enrichmentauditDescRateLimited := enrichmentauditFields[6].Descriptor()
	// enrichmentaudit.DefaultRateLimited holds the default value on creation for the rate_limited field.
	enrichmentaudit.DefaultRateLimited = enrichmentauditDescRateLimited.Default.(bool)
	// enrichmentauditDescCreatedAt is the schema descriptor for created_at field.
	enrichmentauditDescCreatedAt := enrichmentauditFields[11].Descriptor()
	// enrichmentaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrichmentaudit.DefaultCreatedAt = enrichmentauditDescCreatedAt.Default.(func() time.Time)
	masteryFields := schema.Mastery{}.Fields()
	_ = masteryFields
	// masteryDescTypeOfQuestion is the schema descriptor for type_of_question field.
	masteryDescTypeOfQuestion := masteryFields[3].Descriptor()
	// mastery.DefaultTypeOfQuestion holds the default value on creation for the type_of_question field.
	mastery.DefaultTypeOfQuestion = masteryDescTypeOfQuestion.Default.(string)
	// masteryDescAccEasy is the schema descriptor for acc_easy field.
	masteryDescAccEasy := masteryFields[4].Descriptor()
	// mastery.DefaultAccEasy holds the default value on creation for the acc_easy field.
	mastery.DefaultAccEasy = masteryDescAccEasy.Default.(float64)
	// masteryDescAccMedium is the schema descriptor for acc_medium field.
	masteryDescAccMedium := masteryFields[5].Descriptor()
	// mastery.DefaultAccMedium holds the default value on creation for the acc_medium field.
	mastery.DefaultAccMedium = masteryDescAccMedium.Default.(float64)
	// masteryDescAccHard is the schema descriptor for acc_hard field.
	masteryDescAccHard := masteryFields[6].Descriptor()
	// mastery.DefaultAccHard holds the default value on creation for the acc_hard field.
	mastery.DefaultAccHard = masteryDescAccHard.Default.(float64)
	// masteryDescEfficiencyScore is the schema descriptor for efficiency_score field.
	masteryDescEfficiencyScore := masteryFields[7].Descriptor()
	// mastery.DefaultEfficiencyScore holds the default value on creation for the efficiency_score field.
	mastery.DefaultEfficiencyScore = masteryDescEfficiencyScore.Default.(float64)
	// masteryDescExposureCount is the schema descriptor for exposure_count field.
	masteryDescExposureCount := masteryFields[8].Descriptor()
	// mastery.DefaultExposureCount holds the default value on creation for the exposure_count field.
	mastery.DefaultExposureCount = masteryDescExposureCount.Default.(int)
	// masteryDescMasteryPct is the schema descriptor for mastery_pct field.
	masteryDescMasteryPct := masteryFields[9].Descriptor()
	// mastery.DefaultMasteryPct holds the default value on creation for the mastery_pct field.
	mastery.DefaultMasteryPct = masteryDescMasteryPct.Default.(float64)
	// masteryDescUpdatedAt is the schema descriptor for updated_at field.
	masteryDescUpdatedAt := masteryFields[11].Descriptor()
	// mastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mastery.DefaultUpdatedAt = masteryDescUpdatedAt.Default.(func() time.Time)
	// mastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mastery.UpdateDefaultUpdatedAt = masteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	pyqquestionFields := schema.PYQQuestion{}.Fields()
	_ = pyqquestionFields
	// pyqquestionDescIsActive is the schema descriptor for is_active field.
	pyqquestionDescIsActive := pyqquestionFields[10].Descriptor()
	// pyqquestion.DefaultIsActive holds the default value on creation for the is_active field.
	pyqquestion.DefaultIsActive = pyqquestionDescIsActive.Default.(bool)
	// pyqquestionDescQualityVerified is the schema descriptor for quality_verified field.
	pyqquestionDescQualityVerified := pyqquestionFields[11].Descriptor()
	// pyqquestion.DefaultQualityVerified holds the default value on creation for the quality_verified field.
	pyqquestion.DefaultQualityVerified = pyqquestionDescQualityVerified.Default.(bool)
	// pyqquestionDescCreatedAt is the schema descriptor for created_at field.
	pyqquestionDescCreatedAt := pyqquestionFields[12].Descriptor()
	// pyqquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	pyqquestion.DefaultCreatedAt = pyqquestionDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescIsActive is the schema descriptor for is_active field.
	questionDescIsActive := questionFields[19].Descriptor()
	// question.DefaultIsActive holds the default value on creation for the is_active field.
	question.DefaultIsActive = questionDescIsActive.Default.(bool)
	// questionDescQualityVerified is the schema descriptor for quality_verified field.
	questionDescQualityVerified := questionFields[20].Descriptor()
	// question.DefaultQualityVerified holds the default value on creation for the quality_verified field.
	question.DefaultQualityVerified = questionDescQualityVerified.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[28].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[29].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionquestionFields := schema.SessionQuestion{}.Fields()
	_ = sessionquestionFields
	// sessionquestionDescCoverageNew is the schema descriptor for coverage_new field.
	sessionquestionDescCoverageNew := sessionquestionFields[7].Descriptor()
	// sessionquestion.DefaultCoverageNew holds the default value on creation for the coverage_new field.
	sessionquestion.DefaultCoverageNew = sessionquestionDescCoverageNew.Default.(bool)
	studentcounterFields := schema.StudentCounter{}.Fields()
	_ = studentcounterFields
	// studentcounterDescNextSeq is the schema descriptor for next_seq field.
	studentcounterDescNextSeq := studentcounterFields[1].Descriptor()
	// studentcounter.DefaultNextSeq holds the default value on creation for the next_seq field.
	studentcounter.DefaultNextSeq = studentcounterDescNextSeq.Default.(int)
	// studentcounterDescUpdatedAt is the schema descriptor for updated_at field.
	studentcounterDescUpdatedAt := studentcounterFields[2].Descriptor()
	// studentcounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentcounter.DefaultUpdatedAt = studentcounterDescUpdatedAt.Default.(func() time.Time)
	// studentcounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentcounter.UpdateDefaultUpdatedAt = studentcounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	studentcoverageFields := schema.StudentCoverage{}.Fields()
	_ = studentcoverageFields
	// studentcoverageDescSessionsSeen is the schema descriptor for sessions_seen field.
	studentcoverageDescSessionsSeen := studentcoverageFields[4].Descriptor()
	// studentcoverage.DefaultSessionsSeen holds the default value on creation for the sessions_seen field.
	studentcoverage.DefaultSessionsSeen = studentcoverageDescSessionsSeen.Default.(int)
	// studentcoverageDescUpdatedAt is the schema descriptor for updated_at field.
	studentcoverageDescUpdatedAt := studentcoverageFields[7].Descriptor()
	// studentcoverage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentcoverage.DefaultUpdatedAt = studentcoverageDescUpdatedAt.Default.(func() time.Time)
	// studentcoverage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentcoverage.UpdateDefaultUpdatedAt = studentcoverageDescUpdatedAt.UpdateDefault.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescCreatedAt is the schema descriptor for created_at field.
	studysessionDescCreatedAt := studysessionFields[8].Descriptor()
	// studysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	studysession.DefaultCreatedAt = studysessionDescCreatedAt.Default.(func() time.Time)
}
