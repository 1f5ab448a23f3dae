package workout

import (
	"errors"
	"net/http"
	"strconv"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListExercises godoc
// @Summary      List or search exercises
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search text"
// @Success      200 {array} workout.Exercise
// @Router       /exercises [get]
func (h *Handler) ListExercises(c *gin.Context) {
	exercises, err := h.service.ListExercises(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load exercises"})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise godoc
// @Summary      Add an exercise to the library
// @Tags         admin,workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body workout.CreateExerciseRequest true "Exercise"
// @Success      201 {object} workout.Exercise
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/exercises [post]
func (h *Handler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	e, err := h.service.CreateExercise(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrExerciseExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create exercise"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// LogWorkout godoc
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body workout.LogWorkoutRequest true "Workout"
// @Success      201 {object} workout.Workout
// @Failure      400 {object} api.ErrorResponse
// @Router       /workouts [post]
func (h *Handler) LogWorkout(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	w, err := h.service.LogWorkout(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidWorkout):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "performed_on must be YYYY-MM-DD and every exercise needs at least one set"})
		case errors.Is(err, ErrExerciseNotFound):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to log workout"})
		}
		return
	}
	c.JSON(http.StatusCreated, w)
}

// ListWorkouts godoc
// @Summary      List my workouts
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Offset"
// @Success      200 {array} workout.Workout
// @Router       /workouts [get]
func (h *Handler) ListWorkouts(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var page api.Page
	_ = c.ShouldBindQuery(&page)

	workouts, err := h.service.ListWorkouts(c.Request.Context(), userID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load workouts"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// DeleteWorkout godoc
// @Summary      Delete one of my workouts
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Workout ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workouts/{id} [delete]
func (h *Handler) DeleteWorkout(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid workout ID"})
		return
	}

	if err := h.service.DeleteWorkout(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete workout"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Workout deleted"})
}
