package compile

import (
	"strings"

	"lovemedo/css"
	"lovemedo/project"
)

// baseStylesheet is the static rule set every exported document carries.
// All interactivity lives here: screen switching rides on :target, gallery
// paging on :checked radio siblings and lightboxes on :target modals, so the
// exported file needs no script at all.
const baseStylesheet = `
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{height:100%}
body{height:100%;font-family:system-ui,-apple-system,'Segoe UI',sans-serif;background:#1a1a2e;display:flex;align-items:center;justify-content:center;overflow:hidden}
.device{position:relative;width:100vw;height:100vh;max-width:100vw;overflow:hidden;background:#000}
@media (min-width:768px){
  .device{width:min(56.25vh,420px);height:min(100vh,747px);border-radius:24px;box-shadow:0 12px 48px rgba(0,0,0,.6)}
}
@media (min-width:1200px){
  .device{width:min(75vw,1200px);height:min(90vh,700px)}
}
.screen{position:absolute;inset:0;display:none;overflow:hidden}
.screen:first-of-type{display:block;z-index:1}
.screen:target{display:block;z-index:2}
.bg-video{position:absolute;inset:0;width:100%;height:100%;object-fit:cover;z-index:0}
.element{position:absolute}
.element > *{width:100%;height:100%}

.text-content{display:flex;align-items:center;justify-content:center;text-align:center;color:#fff;overflow:hidden}
.longtext-content{display:block;padding:10px;color:#fff;overflow-y:auto;white-space:normal;line-height:1.5}
.media-zoom{display:block;width:100%;height:100%}
.media-image,.media-video,.gallery-image{width:100%;height:100%;object-fit:cover;display:block}
.media-expand{position:absolute;top:6px;right:6px;width:28px;height:28px;display:flex;align-items:center;justify-content:center;background:rgba(0,0,0,.5);color:#fff;border-radius:6px;text-decoration:none;z-index:3}
.media-caption{position:absolute;left:0;right:0;bottom:0;padding:6px 10px;background:rgba(0,0,0,.45);color:#fff;text-align:center}
.media-caption-title{font-weight:600}
.media-caption-subtitle{font-size:.8em;opacity:.85}
.button{display:flex;align-items:center;justify-content:center;width:100%;height:100%;background:#ff6b9d;color:#fff;border-radius:12px;text-decoration:none;font-weight:600}
.sticker{display:flex;align-items:center;justify-content:center;width:100%;height:100%;font-size:2.4em;pointer-events:none;animation:sticker-float 3.5s ease-in-out infinite}
.element-sticker{pointer-events:none}
.shape{width:100%;height:100%}

.navbar{position:absolute;top:0;left:0;right:0;height:10%;display:flex;align-items:center;justify-content:space-between;padding:0 12px;color:#fff;background:linear-gradient(rgba(0,0,0,.35),transparent);z-index:20}
.navbar-back,.navbar-menu{width:32px;text-align:center;color:#fff;text-decoration:none;font-size:1.4em}
.navbar-title{flex:1;text-align:center;font-weight:600;overflow:hidden;text-overflow:ellipsis;white-space:nowrap}
.next-button{position:absolute;left:50%;bottom:4%;transform:translateX(-50%);min-width:45%;padding:12px 24px;display:flex;align-items:center;justify-content:center;background:#ff6b9d;color:#fff;border-radius:24px;text-decoration:none;font-weight:600;z-index:20}
.screen-list{position:absolute;inset:12% 8%;display:flex;flex-direction:column;gap:10px;overflow-y:auto;z-index:20}
.screen-pill{display:block;padding:14px 18px;background:rgba(255,255,255,.12);color:#fff;border-radius:14px;text-decoration:none;text-align:center;font-weight:500}

.gallery{position:relative;width:100%;height:100%;overflow:hidden}
.gallery-toggle{display:none}
.gallery-slide{display:none;position:absolute;inset:0}
input:checked + .gallery-slide{display:block}
.gallery-nav{position:absolute;top:50%;transform:translateY(-50%);width:34px;height:34px;display:flex;align-items:center;justify-content:center;background:rgba(0,0,0,.45);color:#fff;border-radius:50%;cursor:pointer;font-size:1.3em;z-index:4}
.gallery-prev{left:6px}
.gallery-next{right:6px}
.gallery-counter{position:absolute;top:6px;left:50%;transform:translateX(-50%);padding:2px 10px;background:rgba(0,0,0,.45);color:#fff;border-radius:10px;font-size:.75em;z-index:4}
.gallery-thumbs{position:absolute;left:0;right:0;bottom:4px;display:flex;gap:4px;justify-content:center;z-index:4}
.gallery-thumb{width:28px;height:28px;border-radius:4px;overflow:hidden;cursor:pointer;opacity:.7}
.gallery-thumb img{width:100%;height:100%;object-fit:cover;display:block}

.lightbox{position:fixed;inset:0;display:none;align-items:center;justify-content:center;background:rgba(0,0,0,.9);z-index:100}
.lightbox:target{display:flex}
.lightbox-backdrop{position:absolute;inset:0}
.lightbox-media{max-width:94%;max-height:94%;object-fit:contain;position:relative;z-index:101}
.lightbox-close{position:absolute;top:14px;right:18px;color:#fff;font-size:2em;text-decoration:none;z-index:102}
.lightbox-nav{position:absolute;top:50%;transform:translateY(-50%);color:#fff;font-size:2.4em;text-decoration:none;z-index:102;padding:8px 14px}
.lightbox-prev{left:6px}
.lightbox-next{right:6px}

.particles{position:absolute;inset:0;overflow:hidden;pointer-events:none;z-index:15}
.particle{position:absolute;display:block}
.confetti{top:-12px;animation:confetti-fall linear infinite}
.heart,.star{bottom:-30px;animation:float-up ease-in infinite}
.bubble{bottom:-40px;border-radius:50%;border:1px solid rgba(255,255,255,.5);background:rgba(255,255,255,.12);animation:float-up ease-in infinite}
.spark{width:5px;height:5px;border-radius:50%;animation:spark-fly 1.6s ease-out infinite}
@keyframes confetti-fall{to{transform:translate(var(--drift,0),110vh) rotate(720deg)}}
@keyframes float-up{from{transform:translateY(0);opacity:.9}to{transform:translateY(-110vh);opacity:0}}
@keyframes spark-fly{0%{transform:rotate(var(--angle,0deg)) translateX(0);opacity:1}70%{opacity:1}100%{transform:rotate(var(--angle,0deg)) translateX(var(--dist,60px));opacity:0}}
@keyframes sticker-float{0%,100%{transform:translateY(0)}50%{transform:translateY(-8px)}}

audio{position:absolute;left:8px;bottom:8px;width:min(60%,220px);height:30px;z-index:30;opacity:.8}
`

// buildStylesheet assembles the document stylesheet: embedded webfont faces
// first so families are declared before use, then the static base rules and
// finally the project theme overrides. The result is minified.
func buildStylesheet(p *project.Project, fontCSS string) string {
	var sb strings.Builder
	if fontCSS != "" {
		sb.WriteString(fontCSS)
		sb.WriteByte('\n')
	}
	sb.WriteString(baseStylesheet)
	writeThemeOverrides(&sb, p.Config.Theme)
	return css.Minify(sb.String())
}

// writeThemeOverrides maps recognized theme keys onto the chrome rules.
func writeThemeOverrides(sb *strings.Builder, theme map[string]string) {
	if len(theme) == 0 {
		return
	}
	if v := theme["primaryColor"]; v != "" {
		sb.WriteString(".button,.next-button{background:" + v + "}\n")
	}
	if v := theme["backgroundColor"]; v != "" {
		sb.WriteString("body{background:" + v + "}\n")
	}
	if v := theme["fontFamily"]; v != "" {
		sb.WriteString("body,.device{font-family:" + v + "}\n")
	}
	if v := theme["textColor"]; v != "" {
		sb.WriteString(".text-content,.longtext-content{color:" + v + "}\n")
	}
}
