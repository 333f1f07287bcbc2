package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/utils"
)

// ListPeople 人物分页列表
func (h *Handler) ListPeople(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := h.People.List(c.Request.Context(), q.PageIndex, q.PageSize)
	if err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgSuccess, page)
}

// GetPerson 人物详情
func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	person, err := h.People.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgSuccess, person)
}

func (h *Handler) SearchPeople(c *gin.Context) {
	people, err := h.People.Search(c.Request.Context(), c.Param("text"))
	if err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgSuccess, people)
}

func (h *Handler) CreatePerson(c *gin.Context) {
	var req model.ActorView
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return
	}

	person, err := h.People.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgCreated, person)
}

func (h *Handler) UpdatePerson(c *gin.Context) {
	var req model.ActorView
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return
	}

	person, err := h.People.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgUpdated, person)
}

func (h *Handler) DeletePerson(c *gin.Context) {
	if err := h.People.Delete(c.Request.Context(), queryID(c)); err != nil {
		respondError(c, "PersonHandler", err)
		return
	}
	utils.OK(c, msgDeleted, nil)
}
