package templates

import (
	"github.com/a-h/templ"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// ProjectsList renders the project table with a link to the create form.
func ProjectsList(projects []apiclient.Project, lang string, entitySlug string, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "projects.heading"))),
		el(`<a class="cta" href="`+attr(routepath.ProjectNew(lang, entitySlug))+`">`, `</a>`, text(T(loc, "projects.new"))),
	}
	if len(projects) == 0 {
		parts = append(parts, EmptyState(T(loc, "projects.empty")))
		return group(parts...)
	}
	rows := make([]templ.Component, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, group(
			raw(`<tr>`),
			el(`<td><a href="`+attr(routepath.Project(lang, entitySlug, project.ID))+`">`, `</a></td>`, text(project.Name)),
			el(`<td>`, `</td>`, text(project.SourceLanguage)),
			raw(`</tr>`),
		))
	}
	parts = append(parts,
		raw(`<table class="projects"><thead><tr>`),
		el(`<th>`, `</th>`, text(T(loc, "projects.name"))),
		el(`<th>`, `</th>`, text(T(loc, "projects.source_language"))),
		raw(`</tr></thead>`),
		el(`<tbody>`, `</tbody>`, rows...),
		raw(`</table>`),
	)
	return group(parts...)
}

// ProjectForm renders the create-project form with a source language picker.
func ProjectForm(lang string, entitySlug string, errorMessage string, loc Localizer) templ.Component {
	options := make([]templ.Component, 0, len(platformi18n.Codes()))
	for _, code := range platformi18n.Codes() {
		open := `<option value="` + attr(code) + `"`
		if code == lang {
			open += ` selected`
		}
		open += `>`
		options = append(options, el(open, `</option>`, text(code)))
	}
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "projects.new"))),
	}
	if errorMessage != "" {
		parts = append(parts, el(`<p class="form-error" role="alert">`, `</p>`, text(errorMessage)))
	}
	parts = append(parts,
		raw(`<form method="post" action="`+attr(routepath.Projects(lang, entitySlug))+`">`),
		el(`<label for="name">`, `</label>`, text(T(loc, "projects.name"))),
		raw(`<input id="name" name="name" type="text" required>`),
		el(`<label for="source_language">`, `</label>`, text(T(loc, "projects.source_language"))),
		el(`<select id="source_language" name="source_language">`, `</select>`, options...),
		el(`<button type="submit">`, `</button>`, text(T(loc, "projects.create"))),
		raw(`</form>`),
	)
	return group(parts...)
}

// ProjectDetail renders one project with a link to its dictionary.
func ProjectDetail(project apiclient.Project, lang string, entitySlug string, loc Localizer) templ.Component {
	return group(
		el(`<h1>`, `</h1>`, text(project.Name)),
		el(`<p class="source-language">`, `</p>`, text(T(loc, "projects.source_language")+": "+project.SourceLanguage)),
		el(`<a href="`+attr(routepath.Dictionary(lang, entitySlug, project.ID))+`">`, `</a>`, text(T(loc, "dictionary.heading"))),
	)
}

// DictionaryPage renders the glossary for a project with add and remove forms.
func DictionaryPage(project apiclient.Project, terms []apiclient.DictionaryTerm, lang string, entitySlug string, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "dictionary.heading")+": "+project.Name)),
	}
	if len(terms) == 0 {
		parts = append(parts, EmptyState(T(loc, "dictionary.empty")))
	} else {
		rows := make([]templ.Component, 0, len(terms))
		dropAction := routepath.Dictionary(lang, entitySlug, project.ID) + "/delete"
		for _, term := range terms {
			rows = append(rows, group(
				raw(`<tr>`),
				el(`<td>`, `</td>`, text(term.Source)),
				el(`<td>`, `</td>`, text(term.Target)),
				raw(`<td><form method="post" action="`+attr(dropAction)+`">`),
				raw(`<input type="hidden" name="term_id" value="`+attr(term.ID)+`">`),
				el(`<button type="submit" class="link">`, `</button>`, text(T(loc, "dictionary.remove"))),
				raw(`</form></td></tr>`),
			))
		}
		parts = append(parts,
			raw(`<table class="dictionary"><thead><tr>`),
			el(`<th>`, `</th>`, text(T(loc, "dictionary.term"))),
			el(`<th>`, `</th>`, text(T(loc, "dictionary.translation"))),
			raw(`<th></th></tr></thead>`),
			el(`<tbody>`, `</tbody>`, rows...),
			raw(`</table>`),
		)
	}
	parts = append(parts,
		raw(`<form method="post" action="`+attr(routepath.Dictionary(lang, entitySlug, project.ID))+`">`),
		el(`<label for="source">`, `</label>`, text(T(loc, "dictionary.term"))),
		raw(`<input id="source" name="source" type="text" required>`),
		el(`<label for="target">`, `</label>`, text(T(loc, "dictionary.translation"))),
		raw(`<input id="target" name="target" type="text" required>`),
		el(`<button type="submit">`, `</button>`, text(T(loc, "dictionary.add"))),
		raw(`</form>`),
	)
	return group(parts...)
}
