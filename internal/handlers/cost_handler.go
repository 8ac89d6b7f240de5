package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/models"
	"cms_backend/internal/services"
	"cms_backend/internal/services/dto"
)

// CostHandler serves the per-person cost list and its add/mod/del pages.
type CostHandler struct {
	*BaseHandler
	costService services.CostService
}

func NewCostHandler(base *BaseHandler, costService services.CostService) *CostHandler {
	return &CostHandler{
		BaseHandler: base,
		costService: costService,
	}
}

func (h *CostHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/cost_list/:person_id", h.CostList)
	r.GET("/cost_list/add/:person_id", h.CostAddForm)
	r.POST("/cost_list/add/:person_id", h.CostAdd)
	r.GET("/cost_list/mod/:person_id/:cost_id", h.CostModForm)
	r.POST("/cost_list/mod/:person_id/:cost_id", h.CostMod)
	r.POST("/cost_list/del/:person_id/:cost_id", h.CostDel)
}

// CostList returns the parent person and that person's costs. The parent is
// part of the response context, never shared state.
func (h *CostHandler) CostList(c *gin.Context) {
	personID, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	person, costs, err := h.costService.ListForPerson(personID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"person": person, "costs": costs})
}

func (h *CostHandler) CostAddForm(c *gin.Context) {
	h.costForm(c, 0)
}

func (h *CostHandler) CostModForm(c *gin.Context) {
	costID, err := ParseParamUint(c, "cost_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.costForm(c, costID)
}

func (h *CostHandler) costForm(c *gin.Context, costID uint) {
	personID, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	person, cost, grades, err := h.costService.FormContext(personID, costID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	form := dto.CostForm{}
	if cost != nil {
		form = costToForm(cost)
	}

	resp := gin.H{
		"form":      form,
		"person_id": person.ID,
		"grades":    grades,
	}
	if cost != nil {
		resp["cost_id"] = cost.ID
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CostHandler) CostAdd(c *gin.Context) {
	h.saveCost(c, 0)
}

func (h *CostHandler) CostMod(c *gin.Context) {
	costID, err := ParseParamUint(c, "cost_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.saveCost(c, costID)
}

func (h *CostHandler) saveCost(c *gin.Context, costID uint) {
	personID, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var form dto.CostForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	if _, err := h.costService.Save(personID, costID, &form); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/cost_list/%d", personID))
}

func (h *CostHandler) CostDel(c *gin.Context) {
	personID, err := ParseParamUint(c, "person_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	costID, err := ParseParamUint(c, "cost_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.costService.Delete(costID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/cost_list/%d", personID))
}

func costToForm(cost *models.Cost) dto.CostForm {
	form := dto.CostForm{
		PersonID:     cost.PersonID,
		GradeID:      cost.GradeID,
		Company:      cost.Company,
		DeptCategory: int(cost.DeptCategory),
		Amount:       cost.Amount,
		StartYM:      cost.StartYM.Format("2006-01"),
		RecordType:   int(cost.RecordType),
	}
	if cost.EndYM != nil {
		form.EndYM = cost.EndYM.Format("2006-01")
	}
	return form
}
