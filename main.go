package main

import (
	"fmt"
	"os"

	"github.com/tendor/scenefix/patch"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const sceneFile = "TENDOR-climbing/Assets/Scenes/TENDOR-App.unity"

func _main() error {
	filename := sceneFile
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	n, err := patch.TrackingManager().ApplyFile(filename)
	if err != nil {
		return err
	}
	log.Infof("%s: inserted %d block(s)", filename, n)

	fmt.Println("Scene file fixed successfully!")
	return nil
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		ForceColors:     true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
	err := _main()
	if err != nil {
		log.Fatal(err)
	}
}
