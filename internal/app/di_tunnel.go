package app

import (
	"context"
	"fmt"
	"sync"

	messagesRepository "github.com/MehanikTMYT/chatbot/internal/messages/repository"
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
	tunnelHTTP "github.com/MehanikTMYT/chatbot/internal/tunnel/http"
	tunnelService "github.com/MehanikTMYT/chatbot/internal/tunnel/service"
	tunnelUseCase "github.com/MehanikTMYT/chatbot/internal/tunnel/usecase"
)

// tunnelComponents groups the tunnel wiring inside the container.
type tunnelComponents struct {
	keyMaterial     *tunnelDomain.KeyMaterial
	envelopeService tunnelService.EnvelopeService
	messageRepo     tunnelUseCase.MessageRepository
	useCase         tunnelUseCase.TunnelUseCase
	handler         *tunnelHTTP.TunnelHandler

	keyMaterialInit     sync.Once
	envelopeServiceInit sync.Once
	messageRepoInit     sync.Once
	useCaseInit         sync.Once
	handlerInit         sync.Once
}

// TunnelAlgorithm parses and returns the configured AEAD algorithm.
func (c *Container) TunnelAlgorithm() (tunnelDomain.Algorithm, error) {
	return tunnelDomain.ParseAlgorithm(c.config.TunnelAlgorithm)
}

// KeyMaterial returns the tunnel key.
//
// When TUNNEL_KMS_KEY_URI is configured, the wrapped key from
// TUNNEL_WRAPPED_KEY is unwrapped through the KMS keeper. Otherwise the key
// is read directly from the TUNNEL_KEY environment variable.
func (c *Container) KeyMaterial() (*tunnelDomain.KeyMaterial, error) {
	c.tunnel.keyMaterialInit.Do(func() {
		keyMaterial, err := c.initKeyMaterial()
		if err != nil {
			c.initErrors["keyMaterial"] = err
			return
		}
		c.tunnel.keyMaterial = keyMaterial
	})
	if storedErr, exists := c.initErrors["keyMaterial"]; exists {
		return nil, storedErr
	}
	return c.tunnel.keyMaterial, nil
}

// EnvelopeService returns the envelope encryption service.
func (c *Container) EnvelopeService() (tunnelService.EnvelopeService, error) {
	c.tunnel.envelopeServiceInit.Do(func() {
		envelopeService, err := c.initEnvelopeService()
		if err != nil {
			c.initErrors["envelopeService"] = err
			return
		}
		c.tunnel.envelopeService = envelopeService
	})
	if storedErr, exists := c.initErrors["envelopeService"]; exists {
		return nil, storedErr
	}
	return c.tunnel.envelopeService, nil
}

// MessageRepository returns the encrypted message repository instance.
func (c *Container) MessageRepository() (tunnelUseCase.MessageRepository, error) {
	c.tunnel.messageRepoInit.Do(func() {
		messageRepo, err := c.initMessageRepository()
		if err != nil {
			c.initErrors["messageRepo"] = err
			return
		}
		c.tunnel.messageRepo = messageRepo
	})
	if storedErr, exists := c.initErrors["messageRepo"]; exists {
		return nil, storedErr
	}
	return c.tunnel.messageRepo, nil
}

// TunnelUseCase returns the tunnel use case instance.
func (c *Container) TunnelUseCase() (tunnelUseCase.TunnelUseCase, error) {
	c.tunnel.useCaseInit.Do(func() {
		useCase, err := c.initTunnelUseCase()
		if err != nil {
			c.initErrors["tunnelUseCase"] = err
			return
		}
		c.tunnel.useCase = useCase
	})
	if storedErr, exists := c.initErrors["tunnelUseCase"]; exists {
		return nil, storedErr
	}
	return c.tunnel.useCase, nil
}

// TunnelHandler returns the tunnel HTTP handler instance.
func (c *Container) TunnelHandler() (*tunnelHTTP.TunnelHandler, error) {
	c.tunnel.handlerInit.Do(func() {
		useCase, err := c.TunnelUseCase()
		if err != nil {
			c.initErrors["tunnelHandler"] = fmt.Errorf("failed to get tunnel use case for handler: %w", err)
			return
		}
		c.tunnel.handler = tunnelHTTP.NewTunnelHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["tunnelHandler"]; exists {
		return nil, storedErr
	}
	return c.tunnel.handler, nil
}

// initKeyMaterial loads the tunnel key from KMS or from the environment.
func (c *Container) initKeyMaterial() (*tunnelDomain.KeyMaterial, error) {
	alg, err := c.TunnelAlgorithm()
	if err != nil {
		return nil, err
	}

	if c.config.TunnelKMSKeyURI != "" {
		kms := tunnelService.NewKMSService()
		keyMaterial, err := kms.UnwrapKey(
			context.Background(),
			c.config.TunnelKMSKeyURI,
			c.config.TunnelWrappedKey,
			alg,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap tunnel key: %w", err)
		}
		return keyMaterial, nil
	}

	keyMaterial, err := tunnelDomain.LoadKeyMaterialFromEnv(alg)
	if err != nil {
		return nil, fmt.Errorf("failed to load tunnel key: %w", err)
	}
	return keyMaterial, nil
}

// initEnvelopeService creates the envelope service from the loaded key.
func (c *Container) initEnvelopeService() (tunnelService.EnvelopeService, error) {
	alg, err := c.TunnelAlgorithm()
	if err != nil {
		return nil, err
	}

	keyMaterial, err := c.KeyMaterial()
	if err != nil {
		return nil, err
	}

	envelopeService, err := tunnelService.NewEnvelopeService(keyMaterial, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope service: %w", err)
	}
	return envelopeService, nil
}

// initMessageRepository creates the message repository instance.
func (c *Container) initMessageRepository() (tunnelUseCase.MessageRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for message repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return messagesRepository.NewMySQLMessageRepository(db), nil
	case "postgres":
		return messagesRepository.NewPostgreSQLMessageRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTunnelUseCase creates the tunnel use case with all its dependencies.
func (c *Container) initTunnelUseCase() (tunnelUseCase.TunnelUseCase, error) {
	envelopeService, err := c.EnvelopeService()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope service for tunnel use case: %w", err)
	}

	messageRepo, err := c.MessageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get message repository for tunnel use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for tunnel use case: %w", err)
	}

	useCase := tunnelUseCase.NewTunnelUseCase(envelopeService, messageRepo)
	return tunnelUseCase.NewTunnelUseCaseWithMetrics(useCase, businessMetrics), nil
}
