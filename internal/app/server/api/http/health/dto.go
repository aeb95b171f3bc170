package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	Storage string `json:"storage" example:"memory" doc:"Configured hero storage"`
	Heroes  int    `json:"heroes" example:"9" doc:"Number of stored heroes"`
}
