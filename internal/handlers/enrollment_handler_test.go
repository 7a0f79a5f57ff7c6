package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ameer1428/ElevateU/internal/handlers"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/service/mocks"
)

func TestEnrollmentHandler_Enroll(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()
	validReq := model.EnrollRequest{UserID: userID, CourseID: courseID}
	enrollment := &model.Enrollment{
		EnrollmentID: uuid.New(),
		UserID:       userID,
		CourseID:     courseID,
		EnrolledAt:   time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockEnrollmentService)
		expectedStatus int
	}{
		{
			name: "Success - New enrollment returns 201",
			body: validReq,
			setupMock: func(m *mocks.MockEnrollmentService) {
				m.On("Enroll", mock.Anything, &validReq).Return(enrollment, true, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Success - Re-enrolling returns 200 with existing row",
			body: validReq,
			setupMock: func(m *mocks.MockEnrollmentService) {
				m.On("Enroll", mock.Anything, &validReq).Return(enrollment, false, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - Missing course id",
			body:           model.EnrollRequest{UserID: userID},
			setupMock:      func(m *mocks.MockEnrollmentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - Unknown user or course",
			body: validReq,
			setupMock: func(m *mocks.MockEnrollmentService) {
				m.On("Enroll", mock.Anything, &validReq).Return(nil, false, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEnrollmentService := mocks.NewMockEnrollmentService(t)
			tt.setupMock(mockEnrollmentService)

			enrollmentHandler := handlers.NewEnrollmentHandler(mockEnrollmentService, nil)
			router := chi.NewRouter()
			router.Post("/api/enrollments", enrollmentHandler.Enroll)

			bodyBytes, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus < 400 {
				var got model.Enrollment
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, enrollment.EnrollmentID, got.EnrollmentID)
			}
		})
	}
}

func TestEnrollmentHandler_ListUserEnrollments(t *testing.T) {
	userID := uuid.New()
	course := &model.Course{CourseID: uuid.New(), Title: "Go 101"}

	t.Run("Success - joined rows", func(t *testing.T) {
		mockEnrollmentService := mocks.NewMockEnrollmentService(t)
		mockEnrollmentService.On("ListForUser", mock.Anything, userID).
			Return([]*model.EnrollmentWithCourse{
				{
					Enrollment: model.Enrollment{EnrollmentID: uuid.New(), UserID: userID, CourseID: course.CourseID},
					Course:     course,
				},
			}, nil).Once()

		enrollmentHandler := handlers.NewEnrollmentHandler(mockEnrollmentService, nil)
		router := chi.NewRouter()
		router.Get("/api/enrollments/user/{userID}", enrollmentHandler.ListUserEnrollments)

		req := httptest.NewRequest(http.MethodGet, "/api/enrollments/user/"+userID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.EnrollmentWithCourse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Go 101", got[0].Course.Title)
		assert.Nil(t, got[0].Progress)
	})

	t.Run("Fail - Unknown user", func(t *testing.T) {
		mockEnrollmentService := mocks.NewMockEnrollmentService(t)
		mockEnrollmentService.On("ListForUser", mock.Anything, userID).
			Return(nil, model.ErrNotFound).Once()

		enrollmentHandler := handlers.NewEnrollmentHandler(mockEnrollmentService, nil)
		router := chi.NewRouter()
		router.Get("/api/enrollments/user/{userID}", enrollmentHandler.ListUserEnrollments)

		req := httptest.NewRequest(http.MethodGet, "/api/enrollments/user/"+userID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
