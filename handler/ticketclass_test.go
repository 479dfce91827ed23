package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"driving_school_manager/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTicketClass(t *testing.T, db *gorm.DB, spots int) model.TicketClass {
	location := model.Location{Title: "Main Office", Slug: uuid.NewString(), Active: true}
	require.NoError(t, db.Create(&location).Error)
	drivingClass := model.DrivingClass{Title: "Traffic School", Length: 8, Price: 65}
	require.NoError(t, db.Create(&drivingClass).Error)

	class := model.TicketClass{
		PublicCode:     uuid.NewString(),
		LocationId:     location.ID,
		DrivingClassId: drivingClass.ID,
		Date:           "2026-07-01",
		Hour:           "18:00",
		EndHour:        "20:00",
		Duration:       120,
		Spots:          spots,
		Status:         model.TicketClassStatusActive,
	}
	require.NoError(t, db.Create(&class).Error)
	return class
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) model.Customer {
	customer := model.Customer{Name: name, Email: name + "@students.test"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedRequest(t *testing.T, db *gorm.DB, classId, customerId uint) model.StudentRequest {
	request := model.StudentRequest{
		RequestId:     uuid.NewString(),
		TicketClassId: classId,
		CustomerId:    customerId,
		RequestDate:   time.Now(),
		Status:        model.RequestStatusPending,
	}
	require.NoError(t, db.Create(&request).Error)
	return request
}

func enrolledCount(t *testing.T, db *gorm.DB, classId uint) int64 {
	var n int64
	require.NoError(t, db.Model(&model.TicketClassStudent{}).
		Where("ticket_class_id = ?", classId).Count(&n).Error)
	return n
}

func pendingCount(t *testing.T, db *gorm.DB, classId uint) int64 {
	var n int64
	require.NoError(t, db.Model(&model.StudentRequest{}).
		Where("ticket_class_id = ?", classId).Count(&n).Error)
	return n
}

func TestCreateStudentRequest(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 2)
	customer := seedCustomer(t, db, "jordan")

	url := fmt.Sprintf("/api/v1/ticket/classes/%d/requests", class.ID)
	resp, _ := doJSON(t, app, http.MethodPost, url, map[string]any{
		"studentId":     customer.ID,
		"paymentMethod": "card",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, pendingCount(t, db, class.ID))

	// A second request from the same student is rejected.
	resp, _ = doJSON(t, app, http.MethodPost, url, map[string]any{
		"studentId": customer.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.EqualValues(t, 1, pendingCount(t, db, class.ID))
}

func TestCreateStudentRequestClassFull(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 1)
	enrolled := seedCustomer(t, db, "casey")
	require.NoError(t, db.Create(&model.TicketClassStudent{
		TicketClassId: class.ID,
		CustomerId:    enrolled.ID,
	}).Error)

	other := seedCustomer(t, db, "drew")
	url := fmt.Sprintf("/api/v1/ticket/classes/%d/requests", class.ID)
	resp, _ := doJSON(t, app, http.MethodPost, url, map[string]any{"studentId": other.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAcceptRequestMovesStudentIntoClass(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 2)
	customer := seedCustomer(t, db, "quinn")
	request := seedRequest(t, db, class.ID, customer.ID)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "acceptRequest",
		"studentId": customer.ID,
		"requestId": request.RequestId,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, enrolledCount(t, db, class.ID))
	assert.EqualValues(t, 0, pendingCount(t, db, class.ID), "accepted request is removed")
}

func TestAcceptRequestIsIdempotent(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 2)
	customer := seedCustomer(t, db, "reese")

	// Student already enrolled, stale request still pending.
	require.NoError(t, db.Create(&model.TicketClassStudent{
		TicketClassId: class.ID,
		CustomerId:    customer.ID,
	}).Error)
	request := seedRequest(t, db, class.ID, customer.ID)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "acceptRequest",
		"studentId": customer.ID,
		"requestId": request.RequestId,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, enrolledCount(t, db, class.ID), "no duplicate seat")
	assert.EqualValues(t, 0, pendingCount(t, db, class.ID))
}

func TestAcceptRequestClassFull(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 1)
	enrolled := seedCustomer(t, db, "skyler")
	require.NoError(t, db.Create(&model.TicketClassStudent{
		TicketClassId: class.ID,
		CustomerId:    enrolled.ID,
	}).Error)

	waiting := seedCustomer(t, db, "taylor")
	request := seedRequest(t, db, class.ID, waiting.ID)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "acceptRequest",
		"studentId": waiting.ID,
		"requestId": request.RequestId,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.EqualValues(t, 1, enrolledCount(t, db, class.ID))
	assert.EqualValues(t, 1, pendingCount(t, db, class.ID), "request survives a failed accept")
}

func TestRejectRequestRemovesOnlyThatRequest(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 5)
	first := seedCustomer(t, db, "morgan")
	second := seedCustomer(t, db, "avery")
	target := seedRequest(t, db, class.ID, first.ID)
	seedRequest(t, db, class.ID, second.ID)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "rejectRequest",
		"studentId": first.ID,
		"requestId": target.RequestId,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 0, enrolledCount(t, db, class.ID))
	assert.EqualValues(t, 1, pendingCount(t, db, class.ID))
}

func TestRejectUnknownRequestIs404(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 2)
	customer := seedCustomer(t, db, "finley")
	seedRequest(t, db, class.ID, customer.ID)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "rejectRequest",
		"studentId": customer.ID,
		"requestId": uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.EqualValues(t, 1, pendingCount(t, db, class.ID), "requests are untouched")
}

func TestEnrollmentActionValidation(t *testing.T) {
	app, db := setupApp(t)
	class := seedTicketClass(t, db, 2)

	url := fmt.Sprintf("/api/v1/ticket/classes/%d", class.ID)
	resp, _ := doJSON(t, app, http.MethodPatch, url, map[string]any{
		"action":    "promoteRequest",
		"studentId": 1,
		"requestId": "x",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTicketClassLifecycle(t *testing.T) {
	app, db := setupApp(t)
	location := model.Location{Title: "Annex", Slug: "annex", Active: true}
	require.NoError(t, db.Create(&location).Error)
	drivingClass := model.DrivingClass{Title: "Defensive Driving", Length: 6, Price: 55}
	require.NoError(t, db.Create(&drivingClass).Error)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/ticket/classes", map[string]any{
		"locationId": location.ID,
		"classId":    drivingClass.ID,
		"date":       "2026-07-15",
		"hour":       "18:00",
		"endHour":    "20:00",
		"duration":   120,
		"spots":      10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["data"].(map[string]any)
	classId := int(created["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/ticket/classes/%d", classId), map[string]any{
		"spots": 12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var class model.TicketClass
	require.NoError(t, db.First(&class, classId).Error)
	assert.Equal(t, 12, class.Spots)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/ticket/classes/%d", classId), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.ErrorIs(t, db.First(&class, classId).Error, gorm.ErrRecordNotFound)
}
