package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"survev-skin-studio/models"
	"survev-skin-studio/sprite"
	"survev-skin-studio/utils"
)

// previewTemplate is the standalone snapshot page: the posed stage on the
// left, the individual sprites and the composed loot icon on the right.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; padding: 24px; background: transparent; font-family: sans-serif; }
  .preview-stage {
    position: relative;
    width: {{.Scene.StageWidth}}px;
    height: {{.Scene.StageHeight}}px;
    flex: 0 0 auto;
    background: transparent;
    margin-right: 32px;
  }
  .preview-stage img {
    position: absolute;
    image-rendering: optimizeQuality;
    transform-origin: center;
  }
  .loot-stage {
    position: relative;
    width: 148px;
    height: 148px;
    display: flex;
    align-items: center;
    justify-content: center;
  }
  .loot-stage img {
    position: absolute;
    image-rendering: optimizeQuality;
    top: 50%;
    left: 50%;
    transform: translate(-50%, -50%);
  }
  .loot-outer { width: 146px; height: 146px; }
  .loot-inner { width: 148px; height: 148px; }
  .loot-shirt { width: 128px; height: 128px; }
  figcaption { font-size: 0.8rem; color: #666; margin-top: 4px; }
</style>
</head>
<body>
<div style="display:flex;flex-wrap:wrap;gap:32px;align-items:flex-start;justify-content:center;">
  <div id="stage" class="preview-stage">
{{- range .Scene.Layers}}
    <img src="{{.URI}}" alt="{{.Role}}" style="left:{{.Left}}px;top:{{.Top}}px;width:{{.Width}}px;height:{{.Height}}px;transform:{{.Transform}};" />
{{- end}}
  </div>
  <div style="display:flex;flex-direction:column;gap:12px;flex:0 0 auto;align-items:center;">
    <div style="display:grid;grid-template-columns:repeat(2,auto);gap:16px;justify-items:center;">
{{- range .Sprites}}
      <figure style="margin:0;text-align:center;">
        <img src="{{.URI}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Label}} sprite" style="image-rendering:optimizeQuality;" />
        <figcaption>{{.Label}}</figcaption>
      </figure>
{{- end}}
    </div>
    <figure style="margin:0;text-align:center;">
      <div class="loot-stage">
        <img class="loot-outer" src="{{.LootOuterURI}}" alt="Loot outer" />
        <img class="loot-inner" src="{{.LootInnerURI}}" alt="Loot inner" />
        <img class="loot-shirt" src="{{.LootURI}}" alt="Loot shirt" />
      </div>
      <figcaption>Loot icon</figcaption>
    </figure>
  </div>
</div>
</body>
</html>
`

type spriteFigure struct {
	Label  string
	Width  int
	Height int
	URI    template.URL
}

type previewData struct {
	Title        string
	Scene        *sceneView
	Sprites      []spriteFigure
	LootURI      template.URL
	LootInnerURI template.URL
	LootOuterURI template.URL
}

// sceneView mirrors Scene but carries data URIs in the URL-typed form the
// template engine accepts without rewriting them.
type sceneView struct {
	StageWidth  int
	StageHeight int
	Layers      []layerView
}

type layerView struct {
	Role      string
	Left      int
	Top       int
	Width     int
	Height    int
	Transform template.CSS
	URI       template.URL
}

var previewTmpl = template.Must(template.New("preview").Parse(previewTemplate))

// RenderHTML renders the composed scene plus the sprite grid into a
// standalone HTML document suitable for the export snapshot and the headless
// screenshot pipeline.
func RenderHTML(design *models.OutfitDesign, scene *Scene, set *sprite.Set) (string, error) {
	view := &sceneView{
		StageWidth:  scene.StageWidth,
		StageHeight: scene.StageHeight,
	}
	for _, l := range scene.Layers {
		view.Layers = append(view.Layers, layerView{
			Role:      l.Role,
			Left:      l.Left,
			Top:       l.Top,
			Width:     l.Width,
			Height:    l.Height,
			Transform: template.CSS(l.Transform),
			URI:       template.URL(l.URI),
		})
	}

	title := design.Name
	if title == "" {
		title = "Outfit preview"
	}

	data := previewData{
		Title: title,
		Scene: view,
		Sprites: []spriteFigure{
			{Label: "Body", Width: 140, Height: 140, URI: template.URL(utils.SVGDataURI(set.Body.Markup))},
			{Label: "Backpack", Width: 148, Height: 148, URI: template.URL(utils.SVGDataURI(set.Backpack.Markup))},
			{Label: "Hands", Width: 76, Height: 76, URI: template.URL(utils.SVGDataURI(set.Hands.Markup))},
			{Label: "Feet", Width: 38, Height: 38, URI: template.URL(utils.SVGDataURI(set.Feet.Markup))},
		},
		LootURI:      template.URL(utils.SVGDataURI(set.Loot.Markup)),
		LootInnerURI: template.URL(utils.SVGDataURI(set.LootInner.Markup)),
		LootOuterURI: template.URL(utils.SVGDataURI(set.LootOuter.Markup)),
	}

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute preview template: %w", err)
	}
	return buf.String(), nil
}
