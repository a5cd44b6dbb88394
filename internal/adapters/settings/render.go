package settings

import (
	"encoding/xml"
	"io"

	"go.trai.ch/zerr"
)

// ProfileID is the id of the profile the repositories are listed in.
const ProfileID = "mvnrepo"

// Document is the subset of the Maven settings.xml schema written by Render.
type Document struct {
	XMLName           xml.Name        `xml:"settings"`
	XMLNs             string          `xml:"xmlns,attr"`
	XMLNsXsi          string          `xml:"xmlns:xsi,attr"`
	XsiSchemaLocation string          `xml:"xsi:schemaLocation,attr"`
	Servers           *Servers        `xml:"servers,omitempty"`
	Profiles          *Profiles       `xml:"profiles,omitempty"`
	ActiveProfiles    *ActiveProfiles `xml:"activeProfiles,omitempty"`
}

// Servers is the servers element. A nil *Servers is not written.
type Servers struct {
	Server []Server `xml:"server"`
}

// Profiles is the profiles element.
type Profiles struct {
	Profile []Profile `xml:"profile"`
}

// ActiveProfiles lists the ids of the active profiles.
type ActiveProfiles struct {
	ActiveProfile []string `xml:"activeProfile"`
}

// Server holds the credentials of the repository with the same id.
type Server struct {
	ID       string `xml:"id"`
	Username string `xml:"username,omitempty"`
	Password string `xml:"password,omitempty"`
}

// Profile groups repositories.
type Profile struct {
	ID           string              `xml:"id"`
	Repositories []ProfileRepository `xml:"repositories>repository"`
}

// ProfileRepository is a repository entry of a profile.
type ProfileRepository struct {
	ID  string `xml:"id"`
	URL string `xml:"url"`
}

// Build converts the registered repositories into a settings document.
// Repositories without a URL cannot be listed; their names are returned.
func (h *Handler) Build() (Document, []string) {
	doc := Document{
		XMLNs:             "http://maven.apache.org/SETTINGS/1.0.0",
		XMLNsXsi:          "http://www.w3.org/2001/XMLSchema-instance",
		XsiSchemaLocation: "http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd",
	}

	var (
		skipped []string
		servers []Server
	)
	profile := Profile{ID: ProfileID}

	for _, repo := range h.Repositories() {
		if repo.URL() == nil {
			skipped = append(skipped, repo.Name())
			continue
		}

		profile.Repositories = append(profile.Repositories, ProfileRepository{
			ID:  repo.Name(),
			URL: repo.URL().String(),
		})

		username, hasUsername := repo.creds.Username()
		password, hasPassword := repo.creds.Password()
		if hasUsername || hasPassword {
			servers = append(servers, Server{
				ID:       repo.Name(),
				Username: username,
				Password: password,
			})
		}
	}

	if len(servers) > 0 {
		doc.Servers = &Servers{Server: servers}
	}
	if len(profile.Repositories) > 0 {
		doc.Profiles = &Profiles{Profile: []Profile{profile}}
		doc.ActiveProfiles = &ActiveProfiles{ActiveProfile: []string{ProfileID}}
	}

	return doc, skipped
}

// Render writes the settings.xml of the registered repositories to w and
// returns the names of repositories left out for lack of a URL.
func (h *Handler) Render(w io.Writer) ([]string, error) {
	doc, skipped := h.Build()

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode settings.xml")
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return nil, zerr.Wrap(err, "failed to write settings.xml")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return nil, zerr.Wrap(err, "failed to write settings.xml")
	}

	return skipped, nil
}
