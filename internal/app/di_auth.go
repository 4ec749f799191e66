package app

import (
	"fmt"
	"sync"

	authRepository "github.com/MehanikTMYT/chatbot/internal/auth/repository"
	authService "github.com/MehanikTMYT/chatbot/internal/auth/service"
	authUseCase "github.com/MehanikTMYT/chatbot/internal/auth/usecase"
)

// authComponents groups the client authentication wiring inside the container.
type authComponents struct {
	secretService authService.SecretService
	clientRepo    authUseCase.ClientRepository
	useCase       authUseCase.ClientUseCase

	secretServiceInit sync.Once
	clientRepoInit    sync.Once
	useCaseInit       sync.Once
}

// SecretService returns the client secret hashing service.
func (c *Container) SecretService() authService.SecretService {
	c.auth.secretServiceInit.Do(func() {
		c.auth.secretService = authService.NewSecretService()
	})
	return c.auth.secretService
}

// ClientRepository returns the client repository instance.
func (c *Container) ClientRepository() (authUseCase.ClientRepository, error) {
	c.auth.clientRepoInit.Do(func() {
		clientRepo, err := c.initClientRepository()
		if err != nil {
			c.initErrors["clientRepo"] = err
			return
		}
		c.auth.clientRepo = clientRepo
	})
	if storedErr, exists := c.initErrors["clientRepo"]; exists {
		return nil, storedErr
	}
	return c.auth.clientRepo, nil
}

// ClientUseCase returns the client use case instance.
func (c *Container) ClientUseCase() (authUseCase.ClientUseCase, error) {
	c.auth.useCaseInit.Do(func() {
		useCase, err := c.initClientUseCase()
		if err != nil {
			c.initErrors["clientUseCase"] = err
			return
		}
		c.auth.useCase = useCase
	})
	if storedErr, exists := c.initErrors["clientUseCase"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// initClientRepository creates the client repository instance.
func (c *Container) initClientRepository() (authUseCase.ClientRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for client repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLClientRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLClientRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initClientUseCase creates the client use case with all its dependencies.
func (c *Container) initClientUseCase() (authUseCase.ClientUseCase, error) {
	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for client use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for client use case: %w", err)
	}

	useCase := authUseCase.NewClientUseCase(clientRepo, c.SecretService())
	return authUseCase.NewClientUseCaseWithMetrics(useCase, businessMetrics), nil
}
