package gemini

import (
	"fmt"
	"strings"

	"github.com/bagritech/studio-api/internal/models"
)

const veillePrompt = `En tant qu'expert Marketing pour la BAGRI (Banque Agricole du Niger), effectue une veille concurrentielle stratégique.
Analyse les institutions suivantes au Niger et dans l'UEMOA : SONIBANK, BOBI, Orabank, Ecobank, Coris Bank, ainsi que les Fintechs (Wave, Orange Money) et services de transfert (Al Izza, Nita).
Focus particulier : Banques Agricoles de la sous-région.
Identifie les thématiques fortes (campagnes de récolte, digitalisation, inclusion financière, entrepreneuriat féminin).
Retourne un JSON structuré.`

const defaultBrief = "Promotion générale des services de la BAGRI."

func campaignPrompt(networks []models.SocialNetwork, days []string, veilleDigest, brief string) string {
	if brief == "" {
		brief = defaultBrief
	}
	names := make([]string, len(networks))
	for i, n := range networks {
		names[i] = string(n)
	}
	return fmt.Sprintf(`Tu es le DIRECTEUR DE CRÉATION de la BAGRI (Banque Agricole du Niger).
MISSION : Créer un calendrier éditorial UNIQUE pour les jours suivants : %s.
RÉSEAUX : %s.

DIRECTIVES CRUCIALES :
1. ZÉRO REDONDANCE : Chaque jour doit avoir un angle d'attaque différent.
2. ADAPTATION RÉSEAU : LinkedIn (Analytique), Facebook (Familial), Instagram (Esthétique).
3. CONTEXTE : %s
4. BRIEF : %s

Génère 1 post par jour par réseau demandé. Assure une diversité totale.
VISUELS : Suggère IMAGE (Africains au Niger), VIDEO ou SPEECH.
RETOURNE UN JSON STRICT.`, strings.Join(days, ", "), strings.Join(names, ", "), veilleDigest, brief)
}

func imagePrompt(content string) string {
	return fmt.Sprintf(`Photographie professionnelle haute définition pour la BAGRI (Banque Agricole du Niger).
Scène : %s.
DIRECTIVE CRUCIALE : NE GÉNÈRE AUCUN TEXTE, AUCUN LOGO ET AUCUN SYMBOLE DANS L'IMAGE.
Composition : Format carré 1:1. Laisse délibérément le coin supérieur droit vide et propre pour l'incrustation officielle du logo BAGRI.
Personnes : Uniquement des Nigériens (Africains de l'Ouest), fiers, rayonnants, en situation réelle au Niger (champs verdoyants, bureaux modernes à Niamey, marchés).
Couleurs : Respecte la charte BAGRI avec des touches de VERT (#008B45) et ORANGE (#F36F21).
Style : Authentique, chaleureux, institutionnel.`, content)
}

const videoPrompt = `Vidéo cinématographique pour la BAGRI Niger. Une personne africaine nigérienne souriante. Scène de vie au Niger. Qualité 1080p. INTERDICTION de générer des logos ou du texte. Composition aérée pour permettre l'ajout de logos en post-production.`

func speechPrompt(content string) string {
	return "Voix radio professionnelle du Niger, ton chaleureux et rassurant : " + content
}
