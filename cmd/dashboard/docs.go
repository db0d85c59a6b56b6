package main

//go:generate swag init -g cmd/dashboard/main.go -o docs

// @title           Marketdash API
// @version         0.1.0
// @description     Read-only dashboard gateway over the trading data plane: proxied upstream reads plus server-rendered view state.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
