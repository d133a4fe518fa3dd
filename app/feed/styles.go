package feed

// styleBlock is the fixed card stylesheet, tuned for both light and dark
// themes of the target blog.
const styleBlock = `<style>
:root {
    --gbt-accent: #ff9d00;
    --gbt-accent-hover: #ffb136;
    --gbt-bg: #1c2129;
    --gbt-card: #1c2129;
    --gbt-text: #e2e8f0;
    --gbt-sub: #8492a6;
    --gbt-border: #2d323d;
}

.gbt-resource-wrapper {
    font-family: -apple-system, "PingFang SC", BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    padding: 15px;
    max-width: 1000px;
    margin: 0 auto;
}

.gbt-header {
    text-align: center;
    margin: 25px 0 30px;
    color: #000 !important;
    font-size: 24px;
    font-weight: 900;
    line-height: 1.3;
}

.dark-theme .gbt-header,
body.dark-theme .gbt-header,
html.dark .gbt-header,
[data-theme="dark"] .gbt-header {
    color: #e2e8f0 !important;
}

.gbt-resource-card {
    max-width: 880px;
    margin: 0 auto 18px;
    padding: 18px 22px;
    border-radius: 16px;
    background: var(--main-bg-color);
    border: 1px solid var(--border-color);
    display: flex;
    align-items: center;
    gap: 20px;
    transition: all 0.3s ease;
    box-shadow: 0 2px 8px rgba(0, 0, 0, 0.05);
}

.dark-theme .gbt-resource-card,
body.dark-theme .gbt-resource-card,
html.dark .gbt-resource-card {
    background: var(--gbt-card);
    border-color: var(--gbt-border);
    box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
}

.gbt-resource-card:hover {
    transform: translateY(-2px);
    box-shadow: 0 8px 20px rgba(0, 0, 0, 0.1);
}

.dark-theme .gbt-resource-card:hover,
body.dark-theme .gbt-resource-card:hover {
    box-shadow: 0 12px 35px rgba(0, 0, 0, 0.4);
}

.gbt-res-preview {
    flex-shrink: 0;
    width: 100px;
    height: 100px;
    border-radius: 18px;
    overflow: hidden;
    border: 2px solid var(--border-color);
    background: #f5f5f5;
}

.dark-theme .gbt-res-preview,
body.dark-theme .gbt-res-preview {
    border-color: var(--gbt-border);
    background: #2d323d;
}

.gbt-res-preview img {
    width: 100%;
    height: 100%;
    object-fit: cover;
    display: block;
}

.gbt-res-info {
    flex-grow: 1;
    min-width: 0;
}

.gbt-res-tag {
    display: inline-flex;
    background: rgba(255, 157, 0, 0.12);
    color: var(--gbt-accent);
    padding: 3px 10px;
    font-size: 10px;
    font-weight: 700;
    border-radius: 5px;
    margin-bottom: 8px;
    letter-spacing: 0.3px;
}

.gbt-res-title {
    font-size: 18px;
    font-weight: 800;
    color: var(--focus-color);
    margin: 0 0 6px 0;
    line-height: 1.35;
}

.dark-theme .gbt-res-title,
body.dark-theme .gbt-res-title {
    color: #fff;
}

.gbt-res-desc {
    font-size: 13px;
    color: var(--muted-2-color);
    line-height: 1.5;
    margin: 0 0 10px 0;
    display: -webkit-box;
    -webkit-line-clamp: 2;
    -webkit-box-orient: vertical;
    overflow: hidden;
}

.dark-theme .gbt-res-desc,
body.dark-theme .gbt-res-desc {
    color: var(--gbt-sub);
}

.gbt-res-footer {
    font-size: 11px;
    color: var(--muted-3-color);
    display: flex;
    align-items: center;
    gap: 10px;
    flex-wrap: wrap;
}

.dark-theme .gbt-res-footer,
body.dark-theme .gbt-res-footer {
    color: var(--gbt-sub);
}

.gbt-redeem-code {
    display: inline-block;
    background: rgba(72, 187, 120, 0.15);
    color: #48bb78;
    padding: 2px 8px;
    border-radius: 5px;
    font-size: 10px;
    font-weight: 600;
    font-family: monospace;
    letter-spacing: 0.3px;
}

.gbt-publish-date {
    color: var(--muted-3-color);
    font-size: 11px;
}

.dark-theme .gbt-publish-date {
    color: var(--gbt-sub);
}

.gbt-download-btn {
    display: inline-flex;
    align-items: center;
    justify-content: center;
    background: var(--gbt-accent);
    color: #fff;
    padding: 10px 22px;
    border-radius: 10px;
    font-weight: 700;
    font-size: 13px;
    text-decoration: none;
    transition: all 0.3s ease;
    white-space: nowrap;
}

.dark-theme .gbt-download-btn,
body.dark-theme .gbt-download-btn {
    color: #000;
}

.gbt-download-btn:hover {
    background: var(--gbt-accent-hover);
    transform: translateY(-1px);
    box-shadow: 0 3px 10px rgba(255, 157, 0, 0.3);
}

@media (max-width: 650px) {
    .gbt-resource-wrapper {
        padding: 12px;
    }

    .gbt-header {
        margin: 20px 0 25px;
        font-size: 20px;
    }

    .gbt-resource-card {
        flex-direction: column;
        text-align: center;
        padding: 16px;
        gap: 16px;
    }

    .gbt-res-preview {
        width: 90px;
        height: 90px;
    }

    .gbt-res-action {
        width: 100%;
    }

    .gbt-download-btn {
        width: 100%;
    }
}
</style>`
