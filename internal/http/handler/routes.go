package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/http/middleware"
	"bloodlink/internal/service"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Donors        service.DonorService
	Profiles      service.ProfileService
	BloodRequests service.BloodRequestService
	Donations     service.DonationService
	Inventory     service.InventoryService
	Hospitals     service.HospitalService
	Events        service.EventService
	Certificates  service.CertificateService
	Queue         service.QueueService
	Eligibility   service.EligibilityService
	Dashboard     service.DashboardService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services, verifier middleware.TokenVerifier) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	requireAuth := middleware.RequireAuth(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)

	api := app.Group("/api")

	api.Get("/donors", ListDonors(svc.Donors))
	api.Post("/donors", requireAuth, RegisterDonor(svc.Donors))
	api.Post("/donors/match", MatchDonors(svc.Donors))
	api.Post("/donors/contact", optionalAuth, ContactDonor(svc.Donors))

	api.Get("/blood-requests", ListBloodRequests(svc.BloodRequests))
	api.Post("/blood-requests", CreateBloodRequest(svc.BloodRequests))
	api.Post("/blood-requests/emergency", CreateEmergencyRequest(svc.BloodRequests))
	api.Patch("/blood-requests/:id/status", UpdateBloodRequestStatus(svc.BloodRequests))

	api.Get("/donations", ListDonations(svc.Donations))
	api.Post("/donations", RecordDonation(svc.Donations))

	api.Get("/inventory", ListInventory(svc.Inventory))
	api.Put("/inventory", UpdateInventory(svc.Inventory))

	api.Get("/hospitals", ListHospitals(svc.Hospitals))

	api.Get("/events", ListEvents(svc.Events))
	api.Post("/events", CreateEvent(svc.Events))

	api.Get("/certificates", ListCertificates(svc.Certificates))
	api.Post("/certificates", IssueCertificate(svc.Certificates))
	api.Get("/certificates/:id/download", CertificateDownloadURL(svc.Certificates))
	api.Get("/certificates/:id/file", CertificateFile(svc.Certificates))

	api.Get("/queue", GetQueue(svc.Queue))
	api.Post("/queue", JoinQueue(svc.Queue))
	api.Put("/queue", UpdateQueueStatus(svc.Queue))

	api.Post("/health-check", CheckEligibility(svc.Eligibility))

	api.Get("/dashboard", GetDashboard(svc.Dashboard))

	api.Get("/profile", requireAuth, GetProfile(svc.Profiles))
	api.Post("/profile", requireAuth, SaveProfile(svc.Profiles))
}
