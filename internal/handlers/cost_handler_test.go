package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/internal/models"
)

func seedPerson(t *testing.T, ts *testServer, name, email string) *models.Person {
	t.Helper()
	person := &models.Person{Name: name, Email: email}
	require.NoError(t, ts.DB.Create(person).Error)
	return person
}

func costFormValues(gradeID uint) url.Values {
	return url.Values{
		"grade":         {fmt.Sprint(gradeID)},
		"company":       {"1"},
		"dept_category": {"1"},
		"amount":        {"500000"},
		"start_ym":      {"2026-04"},
		"record_type":   {"1"},
	}
}

func TestCostList_ScopedToParent(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	sato := seedPerson(t, ts, "Sato", "sato@test.com")
	suzuki := seedPerson(t, ts, "Suzuki", "suzuki@test.com")
	grade := ts.seedGrade(t, models.GradeInG3)

	require.NoError(t, ts.DB.Create(&models.Cost{
		PersonID: sato.ID, GradeID: grade.ID, Company: 1, Amount: 500000,
	}).Error)
	require.NoError(t, ts.DB.Create(&models.Cost{
		PersonID: suzuki.ID, GradeID: grade.ID, Company: 1, Amount: 600000,
	}).Error)

	rec := ts.get(t, fmt.Sprintf("/cost_list/%d", sato.ID), token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Person models.Person `json:"person"`
		Costs  []models.Cost `json:"costs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, sato.ID, body.Person.ID)
	require.Len(t, body.Costs, 1)
	assert.Equal(t, sato.ID, body.Costs[0].PersonID)
}

func TestCostList_UnknownPerson(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	rec := ts.get(t, "/cost_list/9999", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCostAddForm_IncludesGradeChoices(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	person := seedPerson(t, ts, "Sato", "sato@test.com")
	ts.seedGrade(t, models.GradeInG1)
	ts.seedGrade(t, models.GradeOutG1)

	rec := ts.get(t, fmt.Sprintf("/cost_list/add/%d", person.ID), token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Grades []models.Grade `json:"grades"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Grades, 2)
}

func TestCostAdd_ParentComesFromURL(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	sato := seedPerson(t, ts, "Sato", "sato@test.com")
	suzuki := seedPerson(t, ts, "Suzuki", "suzuki@test.com")
	grade := ts.seedGrade(t, models.GradeInG3)

	// The form claims another person; the URL wins.
	form := costFormValues(grade.ID)
	form.Set("person", fmt.Sprint(suzuki.ID))

	rec := ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/add/%d", sato.ID), token, form)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/cost_list/%d", sato.ID), rec.Header().Get("Location"))

	var cost models.Cost
	require.NoError(t, ts.DB.First(&cost).Error)
	assert.Equal(t, sato.ID, cost.PersonID)
}

func TestCostAdd_UnknownGrade(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	person := seedPerson(t, ts, "Sato", "sato@test.com")

	rec := ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/add/%d", person.ID), token, costFormValues(9999))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "grade")
}

func TestCostAdd_InvalidEnumValues(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	person := seedPerson(t, ts, "Sato", "sato@test.com")
	grade := ts.seedGrade(t, models.GradeInG3)

	form := costFormValues(grade.ID)
	form.Set("dept_category", "3")

	rec := ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/add/%d", person.ID), token, form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "dept_category")
}

func TestCostMod_Update(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	person := seedPerson(t, ts, "Sato", "sato@test.com")
	grade := ts.seedGrade(t, models.GradeInG3)

	rec := ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/add/%d", person.ID), token, costFormValues(grade.ID))
	require.Equal(t, http.StatusFound, rec.Code)

	var created models.Cost
	require.NoError(t, ts.DB.First(&created).Error)

	form := costFormValues(grade.ID)
	form.Set("amount", "999999")

	rec = ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/mod/%d/%d", person.ID, created.ID), token, form)
	require.Equal(t, http.StatusFound, rec.Code)

	var updated models.Cost
	require.NoError(t, ts.DB.First(&updated, created.ID).Error)
	assert.Equal(t, 999999, updated.Amount)
}

func TestCostDel(t *testing.T) {
	ts := newTestServer(t)
	token := loginTestUser(t, ts)

	person := seedPerson(t, ts, "Sato", "sato@test.com")
	grade := ts.seedGrade(t, models.GradeInG1)
	cost := &models.Cost{PersonID: person.ID, GradeID: grade.ID, Company: 1, Amount: 500000}
	require.NoError(t, ts.DB.Create(cost).Error)

	rec := ts.sendForm(t, http.MethodPost, fmt.Sprintf("/cost_list/del/%d/%d", person.ID, cost.ID), token, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/cost_list/%d", person.ID), rec.Header().Get("Location"))

	var count int64
	require.NoError(t, ts.DB.Model(&models.Cost{}).Count(&count).Error)
	assert.Zero(t, count)
}
