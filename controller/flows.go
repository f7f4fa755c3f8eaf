package controller

import (
	"context"
	"errors"

	"act-wallet-tui/gateway"
)

// CreateToken mints a token from the create-token fields
func (c *Controller) CreateToken(ctx context.Context, in Inputs) error {
	args := gateway.CreateTokenArgs{
		Name:        value(in, FieldTokenName),
		Symbol:      value(in, FieldTokenSymbol),
		Decimals:    gateway.ParseDecimals(value(in, FieldTokenDecimals)),
		TotalSupply: value(in, FieldTokenSupply),
	}
	id, err := c.gw.CreateToken(ctx, args)
	c.settle(SlotCreateToken, err, "Token ID: "+id, id)
	return c.Balance(ctx)
}

// Request registers interest in a token and shows the public key to be paid to
func (c *Controller) Request(ctx context.Context, in Inputs) error {
	args := gateway.RequestArgs{TokenID: value(in, FieldRequestTokenID)}
	pk, err := c.gw.Request(ctx, args)
	c.settle(SlotRequest, err, "Public Key: "+pk, pk)
	return c.Balance(ctx)
}

// Pay spends tokens to a public key and shows the spend address
func (c *Controller) Pay(ctx context.Context, in Inputs) error {
	args := gateway.PayArgs{
		TokenID: value(in, FieldPayTokenID),
		Amount:  value(in, FieldPayAmount),
		To:      value(in, FieldPayTo),
	}
	addr, err := c.gw.Pay(ctx, args)
	c.settle(SlotPay, err, "Crated spend: "+addr, addr)
	return c.Balance(ctx)
}

// Receive redeems a spend address
func (c *Controller) Receive(ctx context.Context, in Inputs) error {
	args := gateway.ReceiveArgs{SpendAddress: value(in, FieldSpendAddress)}
	err := c.gw.Receive(ctx, args)
	c.settle(SlotReceive, err, "Tokens received.", "")
	return c.Balance(ctx)
}

// settle writes a flow outcome into its status slot
func (c *Controller) settle(flow string, err error, msg, result string) {
	c.mu.Lock()
	if err != nil || result == "" {
		delete(c.results, flow)
	} else {
		c.results[flow] = result
	}
	c.mu.Unlock()

	if err != nil {
		c.logFailure(flow, err)
		c.Status.SetError(flow, err.Error())
		return
	}
	c.logger.Info("command succeeded", "flow", flow)
	c.Status.SetMessage(flow, msg)
}

// logFailure logs a failed command, with the backend's code when it rejected it
func (c *Controller) logFailure(slot string, err error) {
	var rejected *gateway.CommandError
	if errors.As(err, &rejected) {
		c.logger.Warn("command rejected", "slot", slot, "command", rejected.Command, "code", rejected.Code, "err", err)
		return
	}
	c.logger.Warn("command failed", "slot", slot, "err", err)
}
