package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           MF Compass API
// @version         0.1.0
// @description     Ranked mutual funds, portfolio simulation, and AI advisory.
// @host            localhost:4000
// @BasePath        /
// @schemes         http
