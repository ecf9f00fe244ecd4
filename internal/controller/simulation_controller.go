package controller

import (
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SimulationController struct {
	Simulations *service.SimulationService
}

func NewSimulationController(simulations *service.SimulationService) *SimulationController {
	return &SimulationController{Simulations: simulations}
}

// Create godoc
// @Summary Start a simulation
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Simulation true "Simulation"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /simulations [post]
func (c *SimulationController) Create(ctx *gin.Context) {
	var sim model.Simulation
	if err := ctx.ShouldBindJSON(&sim); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Simulations.Start(&sim); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": sim.ID, "status": "created"})
}

// @Summary List recent simulations
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Simulation}
// @Router /simulations [get]
func (c *SimulationController) List(ctx *gin.Context) {
	sims, err := c.Simulations.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sims)
}

// @Summary Get a simulation
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} util.Response{data=model.Simulation}
// @Failure 404 {object} util.Response
// @Router /simulations/{id} [get]
func (c *SimulationController) Get(ctx *gin.Context) {
	sim, err := c.Simulations.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, sim)
}

// Update godoc
// @Summary Patch a simulation
// @Description Partial update; a non-empty completed_at is replaced by the server time
// @Tags Simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Param body body object true "Fields to update"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /simulations/{id} [put]
func (c *SimulationController) Update(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Simulations.Patch(ctx.Param("id"), patch); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Simulation updated"})
}

// @Summary Delete a simulation
// @Tags Simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /simulations/{id} [delete]
func (c *SimulationController) Delete(ctx *gin.Context) {
	if err := c.Simulations.Delete(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Simulation deleted successfully"})
}
