package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/lumen/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene contents.
func ShowScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("scene %q\n%s", sc.Name, sceneTable(sc))
	return nil
}

func sceneTable(sc *scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Material", "Type", "Albedo", "Fuzz"})
	for index, mat := range sc.Materials {
		name := sc.MaterialNames[index]
		switch m := mat.(type) {
		case *scene.Lambertian:
			table.Append([]string{name, "lambertian", fmtVec3(m.Albedo), "-"})
		case *scene.Metal:
			table.Append([]string{name, "metal", fmtVec3(m.Albedo), fmt.Sprintf("%.3f", m.Fuzz)})
		default:
			table.Append([]string{name, fmt.Sprintf("%T", mat), "-", "-"})
		}
	}
	table.Render()

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Object", "Center", "Radius", "Material"})
	for index, obj := range sc.Objects {
		if s, ok := obj.(*scene.Sphere); ok {
			table.Append([]string{
				fmt.Sprintf("sphere %d", index),
				fmtVec3(s.Center),
				fmt.Sprintf("%.3f", s.Radius),
				sc.MaterialName(s.Material),
			})
		}
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", len(sc.Objects))})
	table.Render()

	return buf.String()
}

func fmtVec3(v [3]float32) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
