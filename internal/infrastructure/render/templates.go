package render

// HTML layouts mirror the documents the platform produces for signing:
// a service agreement between a contratante (CPF) and a contratado
// (CNPJ), and a general detailed layout listing all parties.

const serviceContractHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Contrato de Prestação de Serviços - {{.Title}}</title>
</head>
<body>
  <div class="header">
    <h1>Contrato de Prestação de Serviços</h1>
    <h2>{{.Title}}</h2>
  </div>
  <div class="parties">
    <p><strong>CONTRATANTE:</strong> {{.Contratante.Name}}, inscrito no {{.Contratante.DocumentLabel}} sob o nº {{.Contratante.DocumentNumber}}, e-mail {{.Contratante.Email}}.</p>
    <p><strong>CONTRATADO:</strong> {{.Contratado.Name}}, inscrito no {{.Contratado.DocumentLabel}} sob o nº {{.Contratado.DocumentNumber}}, e-mail {{.Contratado.Email}}.</p>
  </div>
  {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
  {{if .Value}}<p><strong>Valor:</strong> {{.Value}}</p>{{end}}
  {{if .StartDate}}<p><strong>Início:</strong> {{.StartDate}}{{if .EndDate}} — <strong>Término:</strong> {{.EndDate}}{{end}}</p>{{end}}
  <div class="clauses">
    {{range .Clauses}}
    <div class="clause">
      <h3>CLÁUSULA {{.Number}}ª - {{.Title}}</h3>
      <p>{{.Content}}</p>
    </div>
    {{end}}
  </div>
  <div class="signatures">
    <p>E, por estarem assim justas e contratadas, as partes assinam o presente instrumento.</p>
    <div class="signature">_________________________<br>{{.Contratante.Name}}</div>
    <div class="signature">_________________________<br>{{.Contratado.Name}}</div>
  </div>
</body>
</html>
`

const detailedContractHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Type}} - {{.Title}}</title>
</head>
<body>
  <div class="header">
    <h1>{{.Type}}</h1>
    <h2>{{.Title}}</h2>
  </div>
  {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
  <div class="parties">
    <h2>Partes</h2>
    {{range .Parties}}
    <p>{{.Name}}, {{.DocumentLabel}} nº {{.DocumentNumber}}, e-mail {{.Email}}.</p>
    {{end}}
  </div>
  {{if .Value}}<p><strong>Valor:</strong> {{.Value}}</p>{{end}}
  {{if .StartDate}}<p><strong>Início:</strong> {{.StartDate}}{{if .EndDate}} — <strong>Término:</strong> {{.EndDate}}{{end}}</p>{{end}}
  <div class="clauses">
    {{range .Clauses}}
    <div class="clause">
      <h3>CLÁUSULA {{.Number}}ª - {{.Title}}</h3>
      <p>{{.Content}}</p>
    </div>
    {{end}}
  </div>
  <div class="signatures">
    {{range .Parties}}
    <div class="signature">_________________________<br>{{.Name}}</div>
    {{end}}
  </div>
</body>
</html>
`
