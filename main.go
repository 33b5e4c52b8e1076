package main

import "github.com/wavebatch/converter-api/cmd"

// @title           Batch Converter API
// @version         1.0.0
// @description     API for background batch audio conversion to WAV with progress events, waveform extraction and a converted-files cache
// @contact.name    API Support
// @contact.url     https://github.com/wavebatch/converter-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
