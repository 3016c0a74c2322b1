package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobType_Valid(t *testing.T) {
	for _, jt := range []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship} {
		assert.True(t, jt.Valid(), string(jt))
	}
	assert.False(t, JobType("full-time").Valid(), "enum values are case-sensitive display strings")
	assert.False(t, JobType("Freelance").Valid())
	assert.False(t, JobType("").Valid())
}

func TestLocationType_Valid(t *testing.T) {
	for _, lt := range []LocationType{LocationOnsite, LocationRemote, LocationHybrid} {
		assert.True(t, lt.Valid(), string(lt))
	}
	assert.False(t, LocationType("Onsite").Valid())
	assert.False(t, LocationType("").Valid())
}

func TestReactionType_Valid(t *testing.T) {
	for _, rt := range []ReactionType{ReactionLike, ReactionLove, ReactionDislike} {
		assert.True(t, rt.Valid(), string(rt))
	}
	assert.False(t, ReactionType("Like").Valid())
	assert.False(t, ReactionType("").Valid())
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleSeeker, RoleCompany, RoleAdmin} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestApplicantStatus_Valid(t *testing.T) {
	for _, st := range []ApplicantStatus{StatusApplicant, StatusShortlisted, StatusRejected} {
		assert.True(t, st.Valid(), string(st))
	}
	assert.False(t, ApplicantStatus("hired").Valid())
}

func TestAccount_UserAndID(t *testing.T) {
	seeker := &JobSeeker{ID: "s1"}
	a := Account{Role: RoleSeeker, Seeker: seeker}
	assert.Equal(t, seeker, a.User())
	assert.Equal(t, "s1", a.ID())

	company := &Company{ID: "c1"}
	a = Account{Role: RoleCompany, Company: company}
	assert.Equal(t, company, a.User())
	assert.Equal(t, "c1", a.ID())

	admin := &Admin{ID: "a1"}
	a = Account{Role: RoleAdmin, Admin: admin}
	assert.Equal(t, admin, a.User())
	assert.Equal(t, "a1", a.ID())

	assert.Nil(t, Account{}.User())
	assert.Empty(t, Account{}.ID())
}

func TestClone_DeepCopies(t *testing.T) {
	seeker := JobSeeker{
		ID:          "s1",
		Skills:      []string{"go"},
		AppliedJobs: []string{"j1"},
		JobAlertsPreferences: JobAlertsPreferences{
			Keywords: []string{"backend"},
			JobTypes: []JobType{JobTypeFullTime},
		},
	}
	clone := seeker.Clone()
	clone.Skills[0] = "mutated"
	clone.AppliedJobs[0] = "mutated"
	clone.JobAlertsPreferences.Keywords[0] = "mutated"
	assert.Equal(t, "go", seeker.Skills[0])
	assert.Equal(t, "j1", seeker.AppliedJobs[0])
	assert.Equal(t, "backend", seeker.JobAlertsPreferences.Keywords[0])

	job := Job{ID: "j1", Applicants: []string{"s1"}}
	jc := job.Clone()
	jc.Applicants[0] = "mutated"
	assert.Equal(t, "s1", job.Applicants[0])

	post := BlogPost{
		ID:        "p1",
		Reactions: []Reaction{{UserID: "u1", Type: ReactionLike}},
		Comments:  []Comment{{ID: "c1", Content: "hi"}},
	}
	pc := post.Clone()
	pc.Reactions[0].Type = ReactionLove
	pc.Comments[0].Content = "mutated"
	assert.Equal(t, ReactionLike, post.Reactions[0].Type)
	assert.Equal(t, "hi", post.Comments[0].Content)

	company := Company{ID: "c1", Reviews: []Review{{ID: "r1", Rating: 5}}, Jobs: []string{"j1"}}
	cc := company.Clone()
	cc.Reviews[0].Rating = 1
	cc.Jobs[0] = "mutated"
	assert.Equal(t, 5, company.Reviews[0].Rating)
	assert.Equal(t, "j1", company.Jobs[0])
}
