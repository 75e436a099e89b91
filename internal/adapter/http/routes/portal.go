package routes

import (
	"client_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads        = "/leads"
	PathAppointments = "/appointments"
	PathProposals    = "/proposals"
	PathSupport      = "/support"
	PathClients      = "/clients"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	appointmentHandler *handlers.AppointmentHandler,
	proposalHandler *handlers.ProposalHandler,
	supportHandler *handlers.SupportHandler,
	clientHandler *handlers.ClientHandler,
) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.POST("", leadHandler.CreateLead)
		leads.PUT("/:id", leadHandler.UpdateLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PUT("/outcome/:id", appointmentHandler.UpdateOutcome)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.PUT("/status/:id", proposalHandler.UpdateStatus)
		proposals.GET("/download/:id", proposalHandler.DownloadProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
	}

	support := rg.Group(PathSupport)
	{
		support.GET("", supportHandler.ListTickets)
		support.GET("/:id", supportHandler.GetTicket)
		support.POST("", supportHandler.CreateTicket)
		support.PUT("/status/:id", supportHandler.UpdateStatus)
		support.POST("/reply/:id", supportHandler.AddReply)
		support.DELETE("/:id", supportHandler.DeleteTicket)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/profile", clientHandler.GetProfile)
		clients.PUT("/profile", clientHandler.UpdateProfile)
	}
}
