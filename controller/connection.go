package controller

import (
	"context"

	"act-wallet-tui/gateway"
)

// Refresh asks the backend whether a session is active. A failed query counts
// as not connected and leaves the connect region visible. When connected it
// renders balances and then hides the connect region; only a balance failure is
// returned.
func (c *Controller) Refresh(ctx context.Context) error {
	ok, err := c.gw.IsConnected(ctx)
	if err != nil {
		c.logger.Debug("status query failed", "err", err)
		ok = false
	}
	if !ok {
		return nil
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	if err := c.Balance(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	c.connectVisible = false
	c.mu.Unlock()
	return nil
}

// Connect opens a session on network with the key from the secret-key field.
// Without a secret-key field it does nothing. An empty key asks the backend to
// generate one, which is then held for a single TakeGeneratedKey. A rejection is
// shown in the connect slot. Refresh always runs afterward and its error is returned.
func (c *Controller) Connect(ctx context.Context, network gateway.Network, in Inputs) error {
	if in == nil {
		return nil
	}
	raw, ok := in.Lookup(FieldSecretKey)
	if !ok {
		c.logger.Debug("no secret key input, connect skipped")
		return nil
	}

	args := gateway.ConnectArgs{Network: network}
	if raw != "" {
		args.EvmPk = &raw
	}

	c.logger.Info("connecting", "network", network)
	key, err := c.gw.Connect(ctx, args)
	if err != nil {
		c.logFailure(SlotConnect, err)
		c.Status.SetError(SlotConnect, err.Error())
	} else {
		c.mu.Lock()
		c.connected = true
		c.network = network
		if args.EvmPk == nil {
			c.generatedKey = key
		}
		c.mu.Unlock()

		c.logger.Info("connected", "network", network, "generated_key", args.EvmPk == nil)
		c.Status.SetMessage(SlotConnect, "Connected.")
	}

	return c.Refresh(ctx)
}

// TakeGeneratedKey returns a backend-generated key once; later calls report false
func (c *Controller) TakeGeneratedKey() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.generatedKey
	c.generatedKey = ""
	return key, key != ""
}
