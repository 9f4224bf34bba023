package router

import (
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/application"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/container"
	pginfra "github.com/felipecouto0101/FastFeet-Deliveryman/internal/infrastructure/postgres"
	handlers "github.com/felipecouto0101/FastFeet-Deliveryman/internal/interface/http"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/router/modules"
)

func buildDeliveryManModule() *modules.DeliveryManModule {
	repo := pginfra.NewDeliveryManRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetPublisher(),
		container.GetLogger(),
	)

	handler := handlers.NewDeliveryManHandler(service, container.GetLogger())

	return modules.NewDeliveryManModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildDeliveryManModule())
}
