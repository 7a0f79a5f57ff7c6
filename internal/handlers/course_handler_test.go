package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Ameer1428/ElevateU/internal/handlers"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/service/mocks"
)

func TestCourseHandler_ListCourses(t *testing.T) {
	mockCourseService := mocks.NewMockCourseService(t)
	courseHandler := handlers.NewCourseHandler(mockCourseService, nil)
	router := chi.NewRouter()
	router.Get("/api/courses", courseHandler.ListCourses)

	course := &model.Course{CourseID: uuid.New(), Title: "Go 101", Description: "Intro"}
	mockCourseService.On("ListCourses", mock.Anything).
		Return([]*model.CourseListItem{{Course: course, EnrollmentCount: 4}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []model.CourseListItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Go 101", got[0].Title)
	assert.Equal(t, int64(4), got[0].EnrollmentCount)
}

func TestCourseHandler_GetCourse(t *testing.T) {
	courseID := uuid.New()
	course := &model.Course{
		CourseID:    courseID,
		Title:       "Go 101",
		Description: "Intro",
		Topics:      datatypes.NewJSONSlice([]string{"a", "b"}),
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(m *mocks.MockCourseService)
		expectedStatus int
	}{
		{
			name: "Success",
			url:  "/api/courses/" + courseID.String(),
			setupMock: func(m *mocks.MockCourseService) {
				m.On("GetCourse", mock.Anything, courseID).Return(course, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail - Unknown course",
			url:  "/api/courses/" + courseID.String(),
			setupMock: func(m *mocks.MockCourseService) {
				m.On("GetCourse", mock.Anything, courseID).Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Malformed id",
			url:            "/api/courses/not-a-uuid",
			setupMock:      func(m *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseService := mocks.NewMockCourseService(t)
			tt.setupMock(mockCourseService)

			courseHandler := handlers.NewCourseHandler(mockCourseService, nil)
			router := chi.NewRouter()
			router.Get("/api/courses/{courseID}", courseHandler.GetCourse)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	validReq := model.CreateCourseRequest{
		Title:       "Go 101",
		Description: "Introductory Go course",
		Topics:      []string{"intro", "basics"},
	}
	created := &model.Course{
		CourseID:    uuid.New(),
		Title:       validReq.Title,
		Description: validReq.Description,
		Topics:      datatypes.NewJSONSlice(validReq.Topics),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockCourseService)
		expectedStatus int
	}{
		{
			name: "Success - Valid request",
			body: validReq,
			setupMock: func(m *mocks.MockCourseService) {
				m.On("CreateCourse", mock.Anything, &validReq).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing title",
			body:           model.CreateCourseRequest{Description: "no title"},
			setupMock:      func(m *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Missing description",
			body:           model.CreateCourseRequest{Title: "no description"},
			setupMock:      func(m *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Malformed body",
			body:           "{not json",
			setupMock:      func(m *mocks.MockCourseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - Service error",
			body: validReq,
			setupMock: func(m *mocks.MockCourseService) {
				m.On("CreateCourse", mock.Anything, &validReq).Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseService := mocks.NewMockCourseService(t)
			tt.setupMock(mockCourseService)

			courseHandler := handlers.NewCourseHandler(mockCourseService, nil)
			router := chi.NewRouter()
			router.Post("/api/courses", courseHandler.CreateCourse)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else {
				var err error
				bodyBytes, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus >= 400 {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
		})
	}
}

func TestCourseHandler_DeleteCourse(t *testing.T) {
	courseID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockCourseService)
		expectedStatus int
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockCourseService) {
				m.On("DeleteCourse", mock.Anything, courseID).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Fail - Unknown course",
			setupMock: func(m *mocks.MockCourseService) {
				m.On("DeleteCourse", mock.Anything, courseID).Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseService := mocks.NewMockCourseService(t)
			tt.setupMock(mockCourseService)

			courseHandler := handlers.NewCourseHandler(mockCourseService, nil)
			router := chi.NewRouter()
			router.Delete("/api/courses/{courseID}", courseHandler.DeleteCourse)

			req := httptest.NewRequest(http.MethodDelete, "/api/courses/"+courseID.String(), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
