package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/services"
	"cms_backend/internal/services/dto"
)

// PersonHandler serves the personnel list and its add/mod/del pages.
type PersonHandler struct {
	*BaseHandler
	personService services.PersonService
}

func NewPersonHandler(base *BaseHandler, personService services.PersonService) *PersonHandler {
	return &PersonHandler{
		BaseHandler:   base,
		personService: personService,
	}
}

func (h *PersonHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/person_list", h.PersonList)
	r.GET("/person_list/add", h.PersonAddForm)
	r.POST("/person_list/add", h.PersonAdd)
	r.GET("/person_list/mod/:person_id", h.PersonModForm)
	r.POST("/person_list/mod/:person_id", h.PersonMod)
	r.POST("/person_list/del/:person_id", h.PersonDel)
}

func (h *PersonHandler) PersonList(c *gin.Context) {
	persons, err := h.personService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"persons": persons})
}

func (h *PersonHandler) PersonAddForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": dto.PersonForm{}, "person_id": nil})
}

func (h *PersonHandler) PersonAdd(c *gin.Context) {
	h.savePerson(c, 0)
}

func (h *PersonHandler) PersonModForm(c *gin.Context) {
	id, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	person, err := h.personService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":      dto.PersonForm{Name: person.Name, Email: person.Email},
		"person_id": person.ID,
	})
}

func (h *PersonHandler) PersonMod(c *gin.Context) {
	id, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.savePerson(c, id)
}

func (h *PersonHandler) savePerson(c *gin.Context, id uint) {
	var form dto.PersonForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	if _, err := h.personService.Save(id, &form); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/person_list")
}

func (h *PersonHandler) PersonDel(c *gin.Context) {
	id, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.personService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/person_list")
}
