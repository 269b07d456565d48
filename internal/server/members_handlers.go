package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tayeblagha/library-managememnt-demo/internal/common"
	"github.com/tayeblagha/library-managememnt-demo/internal/database"
)

const memberImageBaseURL = "https://raw.githubusercontent.com/smoothcoode/Image/refs/heads/main/members/"

func createMemberParams(request RequestMember) database.CreateMemberParams {
	return database.CreateMemberParams{
		ID:       uuid.New(),
		Name:     request.Name,
		ImageUrl: memberImageBaseURL + request.ImageURL,
		IsActive: request.Active,
	}
}

// @Summary Search members
// @Description Returns a page of members, optionally filtered by name substring
// @Tags Members
// @Accept json
// @Produce json
// @Param name query string false "Name filter"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} Page[Member] "Page of members"
// @Failure 500 {object} ErrorResponse
// @Router /member [get]
func (cfg *ApiConfig) HandleGetMembers(w http.ResponseWriter, r *http.Request) {
	page, size := parsePageRequest(r)
	name := r.URL.Query().Get("name")

	total, err := cfg.DB.CountMembers(r.Context(), name)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	members, err := cfg.DB.GetMembersPage(r.Context(), database.GetMembersPageParams{
		Name:   name,
		Limit:  size,
		Offset: page * size,
	})
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	content := make([]Member, 0, len(members))
	for _, member := range members {
		content = append(content, memberResponseFromDB(member))
	}
	common.RespondWithJSON(w, http.StatusOK, newPage(content, total, page, size))
}

// @Summary Search active members
// @Description Returns a page of members currently in the library
// @Tags Members
// @Accept json
// @Produce json
// @Param name query string false "Name filter"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} Page[Member] "Page of active members"
// @Failure 500 {object} ErrorResponse
// @Router /member/active [get]
func (cfg *ApiConfig) HandleGetActiveMembers(w http.ResponseWriter, r *http.Request) {
	page, size := parsePageRequest(r)
	name := r.URL.Query().Get("name")

	total, err := cfg.DB.CountActiveMembers(r.Context(), name)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	members, err := cfg.DB.GetActiveMembersPage(r.Context(), database.GetActiveMembersPageParams{
		Name:   name,
		Limit:  size,
		Offset: page * size,
	})
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	content := make([]Member, 0, len(members))
	for _, member := range members {
		content = append(content, memberResponseFromDB(member))
	}
	common.RespondWithJSON(w, http.StatusOK, newPage(content, total, page, size))
}

// @Summary Get member
// @Description Returns one member by id
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} Member
// @Failure 404 {object} ErrorResponse "Unknown member"
// @Router /member/{id} [get]
func (cfg *ApiConfig) HandleGetMemberByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, err := cfg.DB.GetMember(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		common.RespondWithError(w, http.StatusNotFound, "Unknown member")
		return
	}
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, memberResponseFromDB(member))
}

// @Summary Create member
// @Description Creates a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param request body RequestMember true "Member's info"
// @Success 201 {object} Member
// @Failure 400 {object} ErrorResponse "Invalid request body or empty name"
// @Failure 500 {object} ErrorResponse
// @Router /member [post]
func (cfg *ApiConfig) HandlePostMember(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	request := RequestMember{}
	err := decoder.Decode(&request)
	if err != nil || request.Name == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	member, dbErr := cfg.DB.CreateMember(r.Context(), createMemberParams(request))
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, memberResponseFromDB(member))
}

// @Summary Create members in batch
// @Description Creates several members at once
// @Tags Members
// @Accept json
// @Produce json
// @Param request body []RequestMember true "Members' info"
// @Success 201 {array} Member
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse
// @Router /member/batch [post]
func (cfg *ApiConfig) HandlePostMembersBatch(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	request := []RequestMember{}
	err := decoder.Decode(&request)
	if err != nil || len(request) == 0 {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	created := make([]Member, 0, len(request))
	for _, requestMember := range request {
		if requestMember.Name == "" {
			common.RespondWithError(w, http.StatusBadRequest, "Empty member name")
			return
		}
		member, dbErr := cfg.DB.CreateMember(r.Context(), createMemberParams(requestMember))
		if dbErr != nil {
			common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
			return
		}
		created = append(created, memberResponseFromDB(member))
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}

// @Summary Update member
// @Description Updates the member's name
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body RequestMember true "Member's info"
// @Success 200 {object} Member
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Unknown member"
// @Router /member/{id} [put]
func (cfg *ApiConfig) HandlePutMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	decoder := json.NewDecoder(r.Body)
	request := RequestMember{}
	decodeErr := decoder.Decode(&request)
	if decodeErr != nil || request.Name == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	count, dbErr := cfg.DB.UpdateMember(r.Context(), database.UpdateMemberParams{ID: id, Name: request.Name})
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	if count == 0 {
		common.RespondWithError(w, http.StatusNotFound, "Unknown member")
		return
	}

	member, getErr := cfg.DB.GetMember(r.Context(), id)
	if getErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, getErr.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, memberResponseFromDB(member))
}

// @Summary Delete member
// @Description Deletes the member and their reading activities
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 204 {string} string "Deleted successfully"
// @Failure 404 {object} ErrorResponse "Unknown member"
// @Router /member/{id} [delete]
func (cfg *ApiConfig) HandleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	count, dbErr := cfg.DB.DeleteMember(r.Context(), id)
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	if count == 0 {
		common.RespondWithError(w, http.StatusNotFound, "Unknown member")
		return
	}
	cfg.Coordinator.RemoveMember(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Toggle member presence
// @Description Flips the member's active flag. Leaving the library drops all of the member's pending reservations
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} Member
// @Failure 404 {object} ErrorResponse "Unknown member"
// @Router /member/toggle-active/{id} [post]
func (cfg *ApiConfig) HandleToggleMemberActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, getErr := cfg.DB.GetMember(r.Context(), id)
	if errors.Is(getErr, sql.ErrNoRows) {
		common.RespondWithError(w, http.StatusNotFound, "Unknown member")
		return
	}
	if getErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, getErr.Error())
		return
	}

	updated, dbErr := cfg.DB.UpdateMemberActive(r.Context(), database.UpdateMemberActiveParams{
		ID:       id,
		IsActive: !member.IsActive,
	})
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	if !updated.IsActive {
		cfg.Coordinator.RemoveMember(r.Context(), id)
	}
	common.RespondWithJSON(w, http.StatusOK, memberResponseFromDB(updated))
}
