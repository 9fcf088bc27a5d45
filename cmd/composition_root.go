package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"parceltrack/internal/adapters/out/bcrypthash"
	"parceltrack/internal/adapters/out/filestore"
	"parceltrack/internal/adapters/out/nominatim"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/adminrepo"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"
)

// orphanPhotoRetention is the grace period before an unreferenced photo is
// eligible for cleanup. Long enough that an in-flight delivery request can
// never lose its upload.
const orphanPhotoRetention = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	geocoder   ports.Geocoder
	mediaStore ports.MediaStore
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	mediaStore, err := filestore.NewStore(config.UploadsDir, config.UploadsURLPrefix)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     bcrypthash.NewBcryptHasher(),
		geocoder:   nominatim.NewClient(config.NominatimBaseURL, config.NominatimUserAgent, nil, logger),
		mediaStore: mediaStore,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) MediaStore() ports.MediaStore {
	return c.mediaStore
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateStartParcelRouteCommandHandler() commands.StartParcelRouteCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartParcelRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryCommandHandler(f, c.geocoder, c.mediaStore)
}

func (c *CompositionRoot) CreateCleanupOrphanPhotosCommandHandler() commands.CleanupOrphanPhotosCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupOrphanPhotosCommandHandler(f, c.mediaStore, orphanPhotoRetention)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierByIDQueryHandler() queries.GetCourierByIDQueryHandler {
	return queries.NewGetCourierByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsByCourierQueryHandler() queries.GetParcelsByCourierQueryHandler {
	return queries.NewGetParcelsByCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLoginCourierQueryHandler() queries.LoginCourierQueryHandler {
	// A unit of work without Begin serves repositories on the base connection.
	courierRepo := c.uowFactory.Create().CourierRepository()
	return queries.NewLoginCourierQueryHandler(courierRepo, c.hasher)
}

func (c *CompositionRoot) CreateLoginAdminQueryHandler() queries.LoginAdminQueryHandler {
	return queries.NewLoginAdminQueryHandler(adminrepo.NewGormAdminRepository(c.gormDB), c.hasher)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
